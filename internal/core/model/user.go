package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. Registration stores whatever document the
// client submitted, so anything beyond the fields we act on is kept opaque
// in Extra and round-tripped as-is.
type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Email  string             `bson:"email"`
	Solved []string           `bson:"solved,omitempty"`
	Extra  bson.M             `bson:",inline"`
}

// HasSolved reports whether problemID is already in the solved list.
func (u *User) HasSolved(problemID string) bool {
	for _, id := range u.Solved {
		if id == problemID {
			return true
		}
	}
	return false
}

// MarshalJSON flattens the opaque profile fields back into the record so
// responses carry the full stored document.
func (u User) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(u.Extra)+3)
	for k, v := range u.Extra {
		doc[k] = v
	}
	if !u.ID.IsZero() {
		doc["_id"] = u.ID.Hex()
	}
	doc["email"] = u.Email
	if u.Solved != nil {
		doc["solved"] = u.Solved
	}
	return json.Marshal(doc)
}

// UserFromDocument builds a User from a raw stored document.
func UserFromDocument(doc bson.M) *User {
	u := &User{Extra: bson.M{}}
	for k, v := range doc {
		switch k {
		case "_id":
			if id, ok := v.(primitive.ObjectID); ok {
				u.ID = id
			}
		case "email":
			u.Email, _ = v.(string)
		case "solved":
			switch s := v.(type) {
			case []string:
				u.Solved = append([]string(nil), s...)
			case primitive.A:
				for _, e := range s {
					if str, ok := e.(string); ok {
						u.Solved = append(u.Solved, str)
					}
				}
			}
		default:
			u.Extra[k] = v
		}
	}
	return u
}
