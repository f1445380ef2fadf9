package service

import (
	"context"
	"time"

	"social-network-backend/internal/logger"
	"social-network-backend/internal/mailer"
	"social-network-backend/internal/token"
	"social-network-backend/internal/user/model"
	"social-network-backend/internal/user/validator"
	apperrors "social-network-backend/pkg/errors"
	"social-network-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository is the credential store the lifecycle service drives. The
// gorm implementation lives in internal/user/repository; tests supply an
// in-memory fake.
type Repository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string, withPassword bool) (*model.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*model.User, error)
	GetByActivationString(ctx context.Context, activationString string) (*model.User, error)
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*model.User, error)
	GetAll(ctx context.Context) ([]*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) (*model.User, error)
	Activate(ctx context.Context, userID uuid.UUID) error
	SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, userID uuid.UUID) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string, changedAt time.Time) error
	AddFriend(ctx context.Context, userID, friendID uuid.UUID) error
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error
}

// UserService owns the account lifecycle: sign-up, verification, login,
// and the password-reset window. Hashing and token generation happen here,
// as explicit steps before persistence, never inside the storage layer.
type UserService struct {
	repo     Repository
	tokens   *token.Manager
	mail     mailer.Mailer
	baseURL  string
	resetTTL time.Duration
}

func NewService(repo Repository, tokens *token.Manager, mail mailer.Mailer, baseURL string, resetTTL time.Duration) *UserService {
	return &UserService{
		repo:     repo,
		tokens:   tokens,
		mail:     mail,
		baseURL:  baseURL,
		resetTTL: resetTTL,
	}
}

// SignUp creates an unverified identity and emails its activation link.
// Email dispatch is fire-and-forget: a send failure is logged but never
// rolls back the created account.
func (s *UserService) SignUp(ctx context.Context, request *model.SignUpRequest) (*model.User, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, apperrors.Validation("please fill in all required fields correctly", err)
	}

	if err := validator.ValidatePassword(request.Password); err != nil {
		return nil, apperrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	// Activation strings are stored in plaintext; only reset tokens get
	// the extra hash-at-rest layer.
	activationString, _, err := token.IssueSingleUse()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:        request.FirstName,
		LastName:         request.LastName,
		Email:            request.Email,
		Password:         hashedPassword,
		Image:            request.Image,
		Location:         request.Location,
		Occupation:       request.Occupation,
		Active:           false,
		ActivationString: &activationString,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := mailer.SendVerification(sendCtx, s.mail, s.baseURL, user.Email, activationString); err != nil {
			logger.Error("Failed to send verification email",
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
		}
	}()

	return user, nil
}

// VerifyAccount requires an exact activation-string match: an unknown or
// already-used string is an explicit error, never a silent success.
func (s *UserService) VerifyAccount(ctx context.Context, activationString string) error {
	user, err := s.repo.GetByActivationString(ctx, activationString)
	if err != nil {
		return err
	}

	return s.repo.Activate(ctx, user.ID)
}

// LogIn authenticates the identity and issues a session token. Unknown
// email and wrong password are indistinguishable to the caller; an
// unverified account fails even with correct credentials.
func (s *UserService) LogIn(ctx context.Context, request *model.LogInRequest) (string, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return "", apperrors.Validation("please provide your email and password", err)
	}

	user, err := s.repo.GetByEmail(ctx, request.Email, true)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if !utils.CheckPassword(user.Password, request.Password) {
		return "", apperrors.ErrInvalidCredentials
	}

	if !user.Active {
		return "", apperrors.ErrAccountNotVerified
	}

	return s.tokens.IssueSession(user.ID)
}

// ForgotPassword opens a reset window: a random token's hash and expiry
// are stored and the plaintext is emailed. Delivery here is synchronous;
// if it fails the stored pair is cleared so a stale unusable token never
// lingers, and a delivery error is reported.
func (s *UserService) ForgotPassword(ctx context.Context, request *model.ForgotPasswordRequest) error {
	if err := validator.ValidateStruct(request); err != nil {
		return apperrors.Validation("please provide a valid email address", err)
	}

	user, err := s.repo.GetByEmail(ctx, request.Email, false)
	if err != nil {
		return err
	}

	plaintext, hash, err := token.IssueSingleUse()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(s.resetTTL)
	if err := s.repo.SetResetToken(ctx, user.ID, hash, expiresAt); err != nil {
		return err
	}

	if err := mailer.SendPasswordReset(ctx, s.mail, s.baseURL, user.Email, plaintext); err != nil {
		logger.Error("Failed to send password reset email",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)

		if clearErr := s.repo.ClearResetToken(ctx, user.ID); clearErr != nil {
			logger.Error("Failed to clear reset token after delivery failure",
				zap.String("user_id", user.ID.String()),
				zap.Error(clearErr),
			)
		}

		return apperrors.ErrEmailDelivery
	}

	return nil
}

// ResetPassword closes the reset window. An invalid or expired token
// fails without mutating anything; success re-hashes the new password,
// stamps changedPasswordAt and invalidates the token.
func (s *UserService) ResetPassword(ctx context.Context, plaintext string, request *model.ResetPasswordRequest) error {
	user, err := s.repo.GetByResetTokenHash(ctx, token.HashSingleUse(plaintext))
	if err != nil {
		return apperrors.ErrResetTokenInvalid
	}

	if user.PasswordResetToken == nil || user.PasswordResetExpires == nil ||
		!token.VerifySingleUse(plaintext, *user.PasswordResetToken, *user.PasswordResetExpires) {
		return apperrors.ErrResetTokenInvalid
	}

	if err := validator.ValidateStruct(request); err != nil {
		return apperrors.Validation("please provide a matching password and confirmation", err)
	}

	if err := validator.ValidatePassword(request.Password); err != nil {
		return apperrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, user.ID, hashedPassword, time.Now())
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.UserResponse, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

// UpdateProfile applies the fields present in the request, leaving the
// rest untouched. Each provided field is re-validated before anything is
// written; password changes are out of scope here and go through the
// reset flow instead.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, request *model.UpdateProfileRequest) (*model.UserResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, apperrors.Validation("please fill in the updated fields correctly", err)
	}

	fields := map[string]interface{}{}
	if request.FirstName != nil {
		fields["first_name"] = utils.SanitizeString(*request.FirstName)
	}
	if request.LastName != nil {
		fields["last_name"] = utils.SanitizeString(*request.LastName)
	}
	if request.Email != nil {
		fields["email"] = utils.SanitizeEmail(*request.Email)
	}
	if request.Image != nil {
		fields["image"] = *request.Image
	}
	if request.Location != nil {
		fields["location"] = utils.SanitizeString(*request.Location)
	}
	if request.Occupation != nil {
		fields["occupation"] = utils.SanitizeString(*request.Occupation)
	}

	updated, err := s.repo.UpdateProfile(ctx, userID, fields)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// ToggleFriend adds friendID to the friend set of the identity named by
// targetID, or removes it when already present. The mutation always lands
// on the target identity, not on the caller.
func (s *UserService) ToggleFriend(ctx context.Context, targetID, friendID uuid.UUID) (*model.UserResponse, error) {
	if targetID == friendID {
		return nil, apperrors.ErrSelfFriend
	}

	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, friendID); err != nil {
		return nil, err
	}

	if target.HasFriend(friendID) {
		err = s.repo.RemoveFriend(ctx, targetID, friendID)
	} else {
		err = s.repo.AddFriend(ctx, targetID, friendID)
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}
