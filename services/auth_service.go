package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"hotel-reservations/dto"
	"hotel-reservations/models"
	"hotel-reservations/repositories"
	"hotel-reservations/utils"
)

const verificationCodeTTL = 15 * time.Minute

// AuthService handles registration, email verification and credential
// checks. Token issuance lives in utils/jwt.go.
type AuthService struct {
	users repositories.UserRepository
	now   func() time.Time
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users, now: time.Now}
}

// WithClock replaces the wall clock, for tests.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Register creates a disabled USER account and emails a verification code.
// The email send is best-effort; a delivery failure does not roll back the
// registration, the user can request a resend.
func (s *AuthService) Register(input dto.RegisterRequest) (dto.UserResponse, error) {
	log.Printf("Registering user with email %s", input.Email)

	exists, err := s.users.ExistsByEmail(input.Email)
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		log.Printf("User with email %s already exists", input.Email)
		return dto.UserResponse{}, repositories.ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("failed to generate verification code: %w", err)
	}
	expires := s.now().Add(verificationCodeTTL)

	user := &models.User{
		Email:                 input.Email,
		Password:              hash,
		Enabled:               false,
		Role:                  models.RoleUser,
		VerificationCode:      &code,
		VerificationExpiresAt: &expires,
	}
	if err := s.users.Create(user); err != nil {
		return dto.UserResponse{}, err
	}

	if err := utils.SendVerificationEmail(user.Email, code); err != nil {
		log.Printf("Failed to send verification email to %s: %v", user.Email, err)
	}
	return dto.NewUserResponse(user), nil
}

// Verify enables the account when the supplied code matches and has not
// expired, then clears the code.
func (s *AuthService) Verify(input dto.VerifyRequest) error {
	log.Printf("Verifying user with email %s", input.Email)

	user, err := s.users.GetByEmail(input.Email)
	if err != nil {
		return err
	}
	if user.Enabled {
		return ErrUserAlreadyVerified
	}
	if user.VerificationExpiresAt == nil || user.VerificationExpiresAt.Before(s.now()) {
		return ErrVerificationExpired
	}
	if user.VerificationCode == nil || *user.VerificationCode != input.VerificationCode {
		return ErrInvalidVerificationCode
	}

	user.Enabled = true
	user.VerificationCode = nil
	user.VerificationExpiresAt = nil
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("failed to enable user %s: %w", input.Email, err)
	}
	log.Printf("User with email %s verified successfully", input.Email)
	return nil
}

// ResendVerification issues a fresh code with a fresh expiry.
func (s *AuthService) ResendVerification(email string) error {
	log.Printf("Resending verification code to %s", email)

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return err
	}
	if user.Enabled {
		return ErrUserAlreadyVerified
	}
	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}
	expires := s.now().Add(verificationCodeTTL)
	user.VerificationCode = &code
	user.VerificationExpiresAt = &expires
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("failed to update verification code for %s: %w", email, err)
	}

	if err := utils.SendVerificationEmail(user.Email, code); err != nil {
		log.Printf("Failed to send verification email to %s: %v", user.Email, err)
	}
	return nil
}

// Authenticate checks the credentials of a verified account.
func (s *AuthService) Authenticate(input dto.LoginRequest) (*models.User, error) {
	log.Printf("Authenticating user with email %s", input.Email)

	user, err := s.users.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Enabled {
		log.Printf("Login failed - user with email %s is not verified", input.Email)
		return nil, ErrUserNotVerified
	}
	if !utils.CheckPassword(user.Password, input.Password) {
		log.Printf("Login failed - invalid password for email %s", input.Email)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
