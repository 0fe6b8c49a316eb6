// Package auth is the credential store: registration, login, logout, and
// the active session. It owns the user collection.
//
// Passwords are stored and compared in plaintext. That is the system
// contract (single-tenant, local-only, no server), kept deliberately
// rather than silently repaired; treat the database file accordingly.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shelfkeeper/internal/common"
	"shelfkeeper/internal/logging"
	"shelfkeeper/internal/models"
	"shelfkeeper/internal/storage"
	"shelfkeeper/internal/validation"
)

// FieldError tags a registration failure with the offending input field
// so the caller can route the message to the right control.
type FieldError struct {
	Field   string
	Code    validation.Code
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RegisterInput is the raw registration form.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Credentials identify a user at login: Identifier is a username or an
// email.
type Credentials struct {
	Identifier string
	Password   string
}

// Service is the explicit credential-store object.
type Service struct {
	store *storage.Slots
	log   logging.Logger

	// test seams
	now   func() time.Time
	newID func() string
}

// NewService constructs a Service over the given slot store.
func NewService(store *storage.Slots, log logging.Logger) *Service {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Service{
		store: store,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Register validates username, email, password, and confirmation in that
// order, stopping at the first failure, then enforces case-sensitive
// uniqueness of username and email. On success the new user is persisted
// and returned.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if r := validation.ValidateUsername(in.Username); !r.Valid {
		return nil, &FieldError{Field: "username", Code: r.Code, Message: r.Message}
	}
	if r := validation.ValidateEmail(in.Email); !r.Valid {
		return nil, &FieldError{Field: "email", Code: r.Code, Message: r.Message}
	}
	if r := validation.ValidatePassword(in.Password); !r.Valid {
		return nil, &FieldError{Field: "password", Code: r.Code, Message: r.Message}
	}
	if r := validation.ValidatePasswordMatch(in.Password, in.ConfirmPassword); !r.Valid {
		return nil, &FieldError{Field: "confirmPassword", Code: r.Code, Message: r.Message}
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == in.Username {
			return nil, &FieldError{Field: "username", Code: validation.CodeDuplicate, Message: "Username already exists"}
		}
	}
	for _, u := range users {
		if u.Email == in.Email {
			return nil, &FieldError{Field: "email", Code: validation.CodeDuplicate, Message: "Email already registered"}
		}
	}

	ts := s.now().UTC()
	user := models.User{
		ID:        s.newID(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  in.Password,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	users = append(users, user)
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "id", user.ID, "username", user.Username)
	return &user, nil
}

// Login matches the identifier against usernames and emails and the
// password against the stored one, both exactly. The failure is a single
// generic common.ErrInvalidCredentials: it never says whether the account
// exists. On success the session is persisted and the full user
// returned.
func (s *Service) Login(ctx context.Context, creds Credentials) (*models.User, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if (u.Username == creds.Identifier || u.Email == creds.Identifier) && u.Password == creds.Password {
			key, err := s.store.SessionKey(ctx)
			if err != nil {
				return nil, err
			}
			token, err := newSessionToken(&u, key, s.now())
			if err != nil {
				return nil, fmt.Errorf("failed to sign session token: %w", err)
			}
			if err := s.store.SaveSessionToken(ctx, token); err != nil {
				return nil, err
			}

			s.log.Info(ctx, "user logged in", "id", u.ID)
			user := u
			return &user, nil
		}
	}

	return nil, common.ErrInvalidCredentials
}

// Logout clears the active session. Logging out with no session is not
// an error.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.ClearSession(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "user logged out")
	return nil
}

// CurrentUser returns the active session projection, or nil when there
// is none. An unverifiable or expired token reads as no session.
func (s *Service) CurrentUser(ctx context.Context) (*models.Session, error) {
	token, err := s.store.SessionToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	key, err := s.store.SessionKey(ctx)
	if err != nil {
		return nil, err
	}

	session, err := parseSessionToken(token, key, s.now)
	if err != nil {
		s.log.Warn(ctx, "discarding unverifiable session token")
		return nil, nil
	}
	return session, nil
}

// IsAuthenticated reports whether a valid session is present.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	session, err := s.CurrentUser(ctx)
	return err == nil && session != nil
}
