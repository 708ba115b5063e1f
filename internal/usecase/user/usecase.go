package user

import (
	"context"

	"go.uber.org/zap"

	domain "user-rest-service/internal/domain/user"
)

// Repository defines the interface for user data access operations.
// GetByID and Update return a nil user and a nil error when the ID does not exist.
type Repository interface {
	List(ctx context.Context) ([]domain.User, error)                             // List all users in insertion order
	Create(ctx context.Context, f domain.Fields) (*domain.User, error)           // Create a new user
	GetByID(ctx context.Context, id int64) (*domain.User, error)                 // Retrieve user by ID
	Update(ctx context.Context, id int64, f domain.Fields) (*domain.User, error) // Merge fields onto an existing user
	Delete(ctx context.Context, id int64) (bool, error)                          // Delete user by ID
}

// UserUsecase implements Usecase on top of a Repository.
type UserUsecase struct {
	repo Repository  // Repository for data access
	log  *zap.Logger // Logger for structured logging
}

// New creates a new UserUsecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) *UserUsecase {
	return &UserUsecase{repo: r, log: log}
}

// GetAllUsers returns every stored user.
func (uc *UserUsecase) GetAllUsers(ctx context.Context) ([]User, error) {
	domainUsers, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = toDTO(du)
	}

	return users, nil
}

// CreateUser persists a new user from the supplied fields.
func (uc *UserUsecase) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	uc.log.Info("creating user", zap.Stringp("name", in.Name), zap.Stringp("email", in.Email))

	u, err := uc.repo.Create(ctx, domain.Fields{
		Name:  in.Name,
		Email: in.Email,
	})
	if err != nil {
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	out := toDTO(*u)
	return &out, nil
}

// GetUserByID retrieves a user by ID. A missing user yields nil, nil.
func (uc *UserUsecase) GetUserByID(ctx context.Context, id int64) (*User, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error("failed to get user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if u == nil {
		uc.log.Debug("user not found", zap.Int64("id", id))
		return nil, nil
	}

	out := toDTO(*u)
	return &out, nil
}

// UpdateUser overwrites the supplied fields of an existing user.
// A missing user yields nil, nil and nothing is written.
func (uc *UserUsecase) UpdateUser(ctx context.Context, in UpdateUserRequest) (*User, error) {
	uc.log.Info("updating user", zap.Int64("id", in.ID), zap.Stringp("name", in.Name), zap.Stringp("email", in.Email))

	u, err := uc.repo.Update(ctx, in.ID, domain.Fields{
		Name:  in.Name,
		Email: in.Email,
	})
	if err != nil {
		uc.log.Error("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	if u == nil {
		uc.log.Debug("user to update not found", zap.Int64("id", in.ID))
		return nil, nil
	}

	out := toDTO(*u)
	return &out, nil
}

// DeleteUser removes a user and reports whether one was removed.
func (uc *UserUsecase) DeleteUser(ctx context.Context, id int64) (bool, error) {
	uc.log.Info("deleting user", zap.Int64("id", id))

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.log.Error("failed to delete user", zap.Int64("id", id), zap.Error(err))
		return false, err
	}

	return deleted, nil
}

func toDTO(u domain.User) User {
	return User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
