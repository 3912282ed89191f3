package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDoc is a registration document for the users collection. Only the
// email is schema-bound (it is the de-duplication key); every other
// client-supplied field is carried verbatim in Extra and stored inline, so
// the wire shape survives the round trip through Mongo.
type UserDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email string             `bson:"email" json:"-"`
	Extra map[string]any     `bson:",inline" json:"-"`
}

func (u *UserDoc) UnmarshalJSON(data []byte) error {
	m := map[string]any{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	u.Email, _ = m["email"].(string)
	if hex, ok := m["_id"].(string); ok {
		if id, err := primitive.ObjectIDFromHex(hex); err == nil {
			u.ID = id
		}
	}
	delete(m, "email")
	delete(m, "_id")
	u.Extra = m
	return nil
}

func (u UserDoc) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(u.Extra)+2)
	for k, v := range u.Extra {
		m[k] = v
	}
	m["email"] = u.Email
	if !u.ID.IsZero() {
		m["_id"] = u.ID.Hex()
	}
	return json.Marshal(m)
}
