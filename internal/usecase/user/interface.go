package user

import "context"

// Usecase defines the interface for user operations exposed to the transport layer.
// Lookups that find nothing return a nil user and a nil error.
type Usecase interface {
	GetAllUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, in CreateUserRequest) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, in UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}
