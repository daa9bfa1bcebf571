package user

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dainonaka/vsstats/internal/apperrors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a user and returns a session token for them, so a
// successful registration is also a login.
func (s *Service) Register(name, password, confirmation string) (*User, string, error) {
	name = strings.TrimSpace(name)
	password = strings.TrimSpace(password)

	if name == "" || password == "" {
		return nil, "", apperrors.InvalidInput("name and password are required")
	}
	if utf8.RuneCountInString(name) > NameMaxLen {
		return nil, "", apperrors.InvalidInput("name must be at most 10 characters")
	}
	if password != strings.TrimSpace(confirmation) {
		return nil, "", apperrors.InvalidInput("passwords do not match")
	}

	existing, err := s.repo.FindByName(name)
	if err != nil {
		return nil, "", apperrors.Internal("error looking up user", err)
	}
	if existing != nil {
		return nil, "", apperrors.DuplicateName(name)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Internal("error hashing password", err)
	}

	u := &User{Name: name, PasswordHash: string(hashed)}
	if err := s.repo.Create(u); err != nil {
		// two registrations can race past the lookup above; the unique
		// index on users.name decides the loser
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.DuplicateName(name)
		}
		return nil, "", apperrors.Internal("error creating user", err)
	}

	token, err := GenerateJWT(u.ID)
	if err != nil {
		return nil, "", apperrors.Internal("error creating jwt token", err)
	}
	return u, token, nil
}

// Verify looks the user up by exact name and checks the password against
// the stored hash. An unknown name is (nil, false) with no error; a wrong
// or empty password fails closed through the bool, never through an error.
func (s *Service) Verify(name, password string) (*User, bool, error) {
	u, err := s.repo.FindByName(name)
	if err != nil {
		return nil, false, apperrors.Internal("error looking up user", err)
	}
	if u == nil {
		return nil, false, nil
	}

	password = strings.TrimSpace(password)
	if password == "" {
		return u, false, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return u, false, nil
	}
	return u, true, nil
}

// Login verifies credentials and mints a session token.
func (s *Service) Login(name, password string) (*User, string, error) {
	u, ok, err := s.Verify(name, password)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", apperrors.NewAppError(http.StatusUnauthorized, "invalid credentials", nil)
	}

	token, err := GenerateJWT(u.ID)
	if err != nil {
		return nil, "", apperrors.Internal("error creating jwt token", err)
	}
	return u, token, nil
}

func (s *Service) Get(id uint) (*User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperrors.Internal("error looking up user", err)
	}
	if u == nil {
		return nil, apperrors.NotFound("user not found")
	}
	return u, nil
}
