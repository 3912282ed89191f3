package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollegeDoc is a catalog entry. The numeric rating orders the popularity
// ranking; everything else is opaque payload returned to clients verbatim.
// Colleges are read-only here, the collection is populated externally.
type CollegeDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Rating float64            `bson:"college_ratings" json:"-"`
	Extra  map[string]any     `bson:",inline" json:"-"`
}

func (c *CollegeDoc) UnmarshalJSON(data []byte) error {
	m := map[string]any{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	c.Rating, _ = m["college_ratings"].(float64)
	if hex, ok := m["_id"].(string); ok {
		if id, err := primitive.ObjectIDFromHex(hex); err == nil {
			c.ID = id
		}
	}
	delete(m, "college_ratings")
	delete(m, "_id")
	c.Extra = m
	return nil
}

func (c CollegeDoc) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(c.Extra)+2)
	for k, v := range c.Extra {
		m[k] = v
	}
	m["college_ratings"] = c.Rating
	if !c.ID.IsZero() {
		m["_id"] = c.ID.Hex()
	}
	return json.Marshal(m)
}
