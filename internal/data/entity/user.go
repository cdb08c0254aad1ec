package entity

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// User is keyed by email with upsert semantics: profile fields from later
// writes merge over earlier ones. Role is empty for regular users.
type User struct {
	Email string   `bson:"email" json:"email"`
	Name  string   `bson:"name,omitempty" json:"name,omitempty"`
	Role  UserRole `bson:"role,omitempty" json:"role,omitempty"`

	// Extra profile fields are opaque to the core and survive upserts as-is.
	Extra map[string]interface{} `bson:",inline" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
