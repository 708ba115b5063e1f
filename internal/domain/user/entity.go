package user

// User represents a user entity in the system.
type User struct {
	ID    int64  // ID is the unique identifier for the user, assigned by the store
	Name  string // Name is the full name of the user (at most 100 characters)
	Email string // Email is the unique email address of the user
}

// Fields is the set of user attributes supplied by a caller when creating or
// updating a user. A nil field was not supplied.
type Fields struct {
	Name  *string
	Email *string
}

// Apply overwrites the attributes of u that are set in f and leaves the rest
// untouched. The ID is never changed.
func (f Fields) Apply(u *User) {
	if u == nil {
		return
	}
	if f.Name != nil {
		u.Name = *f.Name
	}
	if f.Email != nil {
		u.Email = *f.Email
	}
}
