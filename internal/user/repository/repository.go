package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"social-network-backend/internal/database"
	"social-network-backend/internal/user/model"
	apperrors "social-network-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// friendFields limits preloaded friends to their display attributes.
func friendFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "first_name", "last_name", "image", "location", "occupation")
}

// Create persists a new identity. Emails are lowercased before storage
// so lookups stay case-insensitive regardless of the caller's casing.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	user.ID = uuid.New()
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(user).Error; err != nil {
		errStr := strings.ToLower(err.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "email") {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByEmail looks an identity up by its lowercased email. The password
// hash is only loaded when withPassword is set; every other caller gets
// an identity with the hash zeroed out.
func (r *UserRepository) GetByEmail(ctx context.Context, email string, withPassword bool) (*model.User, error) {
	query := r.db.DB.WithContext(ctx).Where("email = ?", strings.ToLower(email))
	if !withPassword {
		query = query.Omit("password")
	}

	var user model.User
	err := query.First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.DB.WithContext(ctx).
		Preload("Friends", friendFields).
		First(&user, "id = ?", userID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByActivationString(ctx context.Context, activationString string) (*model.User, error) {
	var user model.User
	err := r.db.DB.WithContext(ctx).
		Where("activation_string = ? AND active = false", activationString).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrActivationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by activation string: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByResetTokenHash(ctx context.Context, tokenHash string) (*model.User, error) {
	var user model.User
	err := r.db.DB.WithContext(ctx).
		Where("password_reset_token = ?", tokenHash).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := r.db.DB.WithContext(ctx).
		Preload("Friends", friendFields).
		Omit("password").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateProfile applies a partial set of profile columns and returns the
// refreshed identity. Email changes are lowercased and a duplicate maps
// to ErrEmailTaken, same as Create.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) (*model.User, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, userID)
	}

	if email, ok := fields["email"].(string); ok {
		fields["email"] = strings.ToLower(email)
	}
	fields["updated_at"] = time.Now()

	result := r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(fields)

	if result.Error != nil {
		errStr := strings.ToLower(result.Error.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "email") {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	return r.GetByID(ctx, userID)
}

// Activate clears the single-use activation string and flips the account
// to active in one update.
func (r *UserRepository) Activate(ctx context.Context, userID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"active":            true,
			"activation_string": nil,
			"updated_at":        time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to activate user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	result := r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_reset_token":   tokenHash,
			"password_reset_expires": expiresAt,
			"updated_at":             time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to set reset token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) ClearResetToken(ctx context.Context, userID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_reset_token":   nil,
			"password_reset_expires": nil,
			"updated_at":             time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to clear reset token: %w", result.Error)
	}
	return nil
}

// UpdatePassword stores a new password hash, records the change time and
// closes any open reset window.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string, changedAt time.Time) error {
	result := r.db.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password":               passwordHash,
			"changed_password_at":    changedAt,
			"password_reset_token":   nil,
			"password_reset_expires": nil,
			"updated_at":             time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) AddFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	err := r.db.DB.WithContext(ctx).
		Model(&model.User{ID: userID}).
		Association("Friends").
		Append(&model.User{ID: friendID})
	if err != nil {
		return fmt.Errorf("failed to add friend: %w", err)
	}
	return nil
}

func (r *UserRepository) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	err := r.db.DB.WithContext(ctx).
		Model(&model.User{ID: userID}).
		Association("Friends").
		Delete(&model.User{ID: friendID})
	if err != nil {
		return fmt.Errorf("failed to remove friend: %w", err)
	}
	return nil
}
