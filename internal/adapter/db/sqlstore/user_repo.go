package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-rest-service/internal/domain/user"
)

// UserRepoSQL implements the user Repository on top of a gorm handle.
// The same code serves every dialect the application can open (SQLite, PostgreSQL).
type UserRepoSQL struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoSQL creates a new instance of UserRepoSQL.
func NewUserRepoSQL(db *gorm.DB, log *zap.Logger) *UserRepoSQL {
	return &UserRepoSQL{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
// Name and Email are pointers so that an omitted attribute is written as NULL
// and rejected by the NOT NULL constraint instead of being stored as "".
type UserSchema struct {
	ID    int64   `gorm:"primaryKey;autoIncrement"`
	Name  *string `gorm:"size:100;not null;check:chk_users_name_length,length(name) <= 100"`
	Email *string `gorm:"not null;unique"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

func (s UserSchema) toDomain() user.User {
	u := user.User{ID: s.ID}
	if s.Name != nil {
		u.Name = *s.Name
	}
	if s.Email != nil {
		u.Email = *s.Email
	}
	return u
}

// List returns every user in insertion order.
func (r *UserRepoSQL) List(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]user.User, len(models))
	for i, model := range models {
		users[i] = model.toDomain()
	}

	return users, nil
}

// Create inserts a new user built from the supplied fields and returns the
// stored record with its assigned ID.
func (r *UserRepoSQL) Create(ctx context.Context, f user.Fields) (*user.User, error) {
	model := UserSchema{
		Name:  f.Name,
		Email: f.Email,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	u := model.toDomain()
	return &u, nil
}

// GetByID retrieves a user by ID. It returns nil and no error when no user has that ID.
func (r *UserRepoSQL) GetByID(ctx context.Context, id int64) (*user.User, error) {
	model, err := r.find(ctx, id)
	if err != nil || model == nil {
		return nil, err
	}

	u := model.toDomain()
	return &u, nil
}

// Update merges the supplied fields onto the stored user and saves it.
// It returns nil and no error, without writing anything, when no user has that ID.
func (r *UserRepoSQL) Update(ctx context.Context, id int64, f user.Fields) (*user.User, error) {
	model, err := r.find(ctx, id)
	if err != nil || model == nil {
		return nil, err
	}

	u := model.toDomain()
	f.Apply(&u)

	updated := UserSchema{ID: u.ID, Name: &u.Name, Email: &u.Email}
	if err := r.db.WithContext(ctx).Save(&updated).Error; err != nil {
		r.log.Error("failed to update user in db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	r.log.Info("user updated in db", zap.Int64("id", id))
	return &u, nil
}

// Delete removes a user by ID and reports whether a row was actually removed.
func (r *UserRepoSQL) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&UserSchema{}, id)
	if result.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(result.Error), zap.Int64("id", id))
		return false, fmt.Errorf("failed to delete user: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		r.log.Debug("no user to delete", zap.Int64("id", id))
		return false, nil
	}

	r.log.Info("user deleted in db", zap.Int64("id", id))
	return true, nil
}

func (r *UserRepoSQL) find(ctx context.Context, id int64) (*UserSchema, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found", zap.Int64("id", id))
			return nil, nil
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &model, nil
}

// Migrate creates or updates the users table to match UserSchema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserSchema{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	return nil
}
