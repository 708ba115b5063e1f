package user

// CreateUserRequest represents the request payload for creating a new user.
// Absent fields are nil and are left for the store to reject.
type CreateUserRequest struct {
	Name  *string
	Email *string
}

// UpdateUserRequest represents the request payload for updating an existing user.
// Only non-nil fields are written.
type UpdateUserRequest struct {
	ID    int64
	Name  *string
	Email *string
}

// User represents a user DTO (Data Transfer Object) for API responses.
type User struct {
	ID    int64
	Name  string
	Email string
}
