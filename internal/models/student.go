package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentDoc has the same shape as UserDoc but lives in the students
// collection; de-duplication by email is independent between the two.
type StudentDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email string             `bson:"email" json:"-"`
	Extra map[string]any     `bson:",inline" json:"-"`
}

func (s *StudentDoc) UnmarshalJSON(data []byte) error {
	m := map[string]any{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	s.Email, _ = m["email"].(string)
	if hex, ok := m["_id"].(string); ok {
		if id, err := primitive.ObjectIDFromHex(hex); err == nil {
			s.ID = id
		}
	}
	delete(m, "email")
	delete(m, "_id")
	s.Extra = m
	return nil
}

func (s StudentDoc) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(s.Extra)+2)
	for k, v := range s.Extra {
		m[k] = v
	}
	m["email"] = s.Email
	if !s.ID.IsZero() {
		m["_id"] = s.ID.Hex()
	}
	return json.Marshal(m)
}
