package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"harvesthub/internal/apperr"
	"harvesthub/internal/domain"
	"harvesthub/internal/repos"
)

var ErrBadCreds = apperr.Unauthenticated("invalid username or password")

const bcryptCost = 10

type AuthService struct {
	Users *repos.UserRepo
}

// Register creates a user account and an initial bearer token. Role is
// always "user"; there is no self-service promotion path.
func (s *AuthService) Register(username, email, password, fullName string) (*domain.User, string, error) {
	if _, err := s.Users.ByEmail(email); err == nil {
		return nil, "", apperr.BadRequest("email already registered")
	}
	if _, err := s.Users.ByUsername(username); err == nil {
		return nil, "", apperr.BadRequest("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}
	u, err := s.Users.Insert(username, email, string(hash), fullName)
	if err != nil {
		return nil, "", apperr.Persistence(err)
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login checks credentials and returns the user plus a fresh bearer token.
func (s *AuthService) Login(username, password string) (*domain.User, string, error) {
	u, err := s.Users.ByUsername(username)
	if err != nil {
		return nil, "", ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, "", ErrBadCreds
	}
	token, err := s.issueToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) issueToken(userID int64) (string, error) {
	token := uuid.NewString()
	if err := s.Users.BindSession(token, userID); err != nil {
		return "", apperr.Persistence(err)
	}
	return token, nil
}

// CurrentUser resolves an opaque bearer token to its user.
func (s *AuthService) CurrentUser(token string) (*domain.User, error) {
	u, err := s.Users.SessionUser(token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Unauthenticated("invalid or expired token")
		}
		return nil, apperr.Persistence(err)
	}
	return u, nil
}

func (s *AuthService) Logout(token string) error {
	return s.Users.UnbindSession(token)
}
