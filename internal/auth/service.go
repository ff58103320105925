package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ryanpavini/sistema-na-backend/internal/mailer"
	"github.com/ryanpavini/sistema-na-backend/internal/models"
	"gorm.io/gorm"
)

// ResetTokenTTL is the redemption window for activation and reset tokens.
const ResetTokenTTL = 1 * time.Hour

// AdminStore is the persistence contract the auth flows need. The concrete
// implementation lives in internal/admin; a fake satisfies it in tests.
type AdminStore interface {
	FindByEmail(email string) (*models.Admin, error)
	FindByID(id string) (*models.Admin, error)
	FindByResetToken(token string) (*models.Admin, error)
	Create(admin *models.Admin) error
	Update(id string, fields map[string]interface{}) error
}

// Service orchestrates the credential lifecycle (invite, forgot-password,
// token redemption) and the session flows (login, refresh, change-password).
type Service struct {
	store       AdminStore
	tokens      *TokenIssuer
	mail        mailer.Mailer
	frontendURL string
}

func NewService(store AdminStore, tokens *TokenIssuer, mail mailer.Mailer, frontendURL string) *Service {
	return &Service{
		store:       store,
		tokens:      tokens,
		mail:        mail,
		frontendURL: frontendURL,
	}
}

// Invite provisions a pending admin: no password, a fresh single-use token
// with a one hour expiry, and a best-effort activation mail. The response
// never depends on whether the mail went out.
func (s *Service) Invite(name, email string) (*models.Admin, error) {
	if _, err := s.store.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	token, err := GenerateResetToken()
	if err != nil {
		return nil, err
	}
	expires := time.Now().Add(ResetTokenTTL)

	admin := &models.Admin{
		Name:                 name,
		Email:                email,
		PasswordResetToken:   &token,
		PasswordResetExpires: &expires,
	}

	if err := s.store.Create(admin); err != nil {
		// Concurrent invite for the same email: the unique index decides.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	link := fmt.Sprintf("%s/activate?token=%s", s.frontendURL, token)
	if err := s.mail.SendActivationLink(email, link); err != nil {
		log.Printf("failed to send activation mail to %s: %v", email, err)
	}

	return admin, nil
}

// ForgotPassword re-opens the redemption window for an active account. It
// succeeds silently for unknown emails so responses cannot be used to
// enumerate accounts, and it never clears an existing password.
func (s *Service) ForgotPassword(email string) error {
	admin, err := s.store.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := GenerateResetToken()
	if err != nil {
		return err
	}
	expires := time.Now().Add(ResetTokenTTL)

	if err := s.store.Update(admin.ID, map[string]interface{}{
		"password_reset_token":   token,
		"password_reset_expires": expires,
	}); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
	if err := s.mail.SendResetLink(email, link); err != nil {
		log.Printf("failed to send reset mail to %s: %v", email, err)
	}

	return nil
}

// ResetPassword redeems an activation or reset token. The password write and
// the token clear happen in a single update, so a redeemed token can never be
// redeemed twice.
func (s *Service) ResetPassword(token, newPassword string) error {
	admin, err := s.store.FindByResetToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	if admin.PasswordResetExpires == nil || time.Now().After(*admin.PasswordResetExpires) {
		return ErrExpiredToken
	}

	if failed := ValidatePassword(newPassword); len(failed) > 0 {
		return &PolicyError{Rules: failed}
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.store.Update(admin.ID, map[string]interface{}{
		"password":               hash,
		"password_reset_token":   nil,
		"password_reset_expires": nil,
	})
}

// Login verifies email+password and issues a fresh token pair. Unknown email,
// pending account and wrong password all fail the same way.
func (s *Service) Login(email, password string) (*models.Admin, string, string, error) {
	admin, err := s.store.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if admin.Password == nil || !CheckPasswordHash(password, *admin.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.issuePair(admin.ID)
	if err != nil {
		return nil, "", "", err
	}

	return admin, access, refresh, nil
}

// Refresh rotates a valid refresh token into a new access+refresh pair.
func (s *Service) Refresh(refreshToken string) (*models.Admin, string, string, error) {
	subject, ok := s.tokens.Verify(refreshToken)
	if !ok {
		return nil, "", "", ErrInvalidRefreshToken
	}

	admin, err := s.store.FindByID(subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrNotFound
		}
		return nil, "", "", err
	}

	access, refresh, err := s.issuePair(admin.ID)
	if err != nil {
		return nil, "", "", err
	}

	return admin, access, refresh, nil
}

// ChangePassword replaces the caller's password after verifying the current
// one. Outstanding tokens stay valid until they expire.
func (s *Service) ChangePassword(adminID, currentPassword, newPassword string) error {
	admin, err := s.store.FindByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnauthorized
		}
		return err
	}

	if admin.Password == nil || !CheckPasswordHash(currentPassword, *admin.Password) {
		return ErrInvalidCredentials
	}

	if newPassword == currentPassword {
		return ErrSamePassword
	}

	if failed := ValidatePassword(newPassword); len(failed) > 0 {
		return &PolicyError{Rules: failed}
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.store.Update(admin.ID, map[string]interface{}{
		"password": hash,
	})
}

func (s *Service) issuePair(adminID string) (string, string, error) {
	access, err := s.tokens.IssueAccess(adminID)
	if err != nil {
		return "", "", err
	}

	refresh, err := s.tokens.IssueRefresh(adminID)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}
