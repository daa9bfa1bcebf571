package user

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dainonaka/vsstats/internal/apperrors"
)

// mockGenerateJWT is a helper to override GenerateJWT in tests
var mockGenerateJWT func(id uint) (string, error)

func TestMain(m *testing.M) {
	orig := GenerateJWT
	GenerateJWT = func(id uint) (string, error) {
		if mockGenerateJWT != nil {
			return mockGenerateJWT(id)
		}
		return orig(id)
	}
	code := m.Run()
	GenerateJWT = orig
	os.Exit(code)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestService_Register(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	mockRepo.On("FindByName", "alice").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*user.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*User).ID = 1
	}).Return(nil)
	mockGenerateJWT = func(id uint) (string, error) { return "token123", nil }

	u, token, err := service.Register("alice", "secret", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, uint(1), u.ID)
	assert.NotEqual(t, "secret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
	mockRepo.AssertExpectations(t)
}

func TestService_Register_TrimsInputs(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	mockRepo.On("FindByName", "bob").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*user.User")).Return(nil)
	mockGenerateJWT = func(id uint) (string, error) { return "tok", nil }

	u, _, err := service.Register("  bob ", " pass ", "pass")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass")))
}

func TestService_Register_DuplicateName(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	mockRepo.On("FindByName", "alice").Return(&User{ID: 1, Name: "alice"}, nil)

	_, _, err := service.Register("alice", "secret", "secret")
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.Code(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestService_Register_DuplicateOnInsert(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	// the pre-check misses a concurrent registration; the unique index
	// rejects the insert instead
	mockRepo.On("FindByName", "alice").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*user.User")).Return(gorm.ErrDuplicatedKey)

	_, _, err := service.Register("alice", "secret", "secret")
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.Code(err))
	mockRepo.AssertExpectations(t)
}

func TestService_Register_InvalidInput(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	cases := []struct {
		name         string
		username     string
		password     string
		confirmation string
	}{
		{"empty name", "", "secret", "secret"},
		{"empty password", "alice", "", ""},
		{"blank password", "alice", "   ", "   "},
		{"name too long", "abcdefghijk", "secret", "secret"},
		{"confirmation mismatch", "alice", "secret", "other"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := service.Register(tc.username, tc.password, tc.confirmation)
			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperrors.Code(err))
		})
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestService_Verify(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	stored := &User{ID: 7, Name: "carol", PasswordHash: hashOf(t, "right")}
	mockRepo.On("FindByName", "carol").Return(stored, nil)

	u, ok, err := service.Verify("carol", "right")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(7), u.ID)

	_, ok, err = service.Verify("carol", "wrong")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = service.Verify("carol", "   ")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestService_Verify_UnknownName(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	mockRepo.On("FindByName", "nobody").Return(nil, nil)

	u, ok, err := service.Verify("nobody", "whatever")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, u)
}

func TestService_Login(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	stored := &User{ID: 3, Name: "dave", PasswordHash: hashOf(t, "pass")}
	mockRepo.On("FindByName", "dave").Return(stored, nil)
	mockGenerateJWT = func(id uint) (string, error) { return "tok456", nil }

	u, token, err := service.Login("dave", "pass")
	assert.NoError(t, err)
	assert.Equal(t, "tok456", token)
	assert.Equal(t, uint(3), u.ID)

	_, _, err = service.Login("dave", "nope")
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.Code(err))
}
