package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

// User is a portal account keyed by email. Profile fields beyond the
// known ones are kept verbatim in Profile.
type User struct {
	ID      primitive.ObjectID     `bson:"_id,omitempty"`
	Email   string                 `bson:"email"`
	Role    string                 `bson:"role,omitempty"`
	Name    string                 `bson:"name,omitempty"`
	Profile map[string]interface{} `bson:",inline"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// MarshalJSON flattens Profile next to the known fields.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(u.Profile)+4)
	for k, v := range u.Profile {
		out[k] = v
	}
	if !u.ID.IsZero() {
		out["_id"] = u.ID
	}
	out["email"] = u.Email
	if u.Role != "" {
		out["role"] = u.Role
	}
	if u.Name != "" {
		out["name"] = u.Name
	}
	return json.Marshal(out)
}
