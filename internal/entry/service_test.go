package entry

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dainonaka/vsstats/internal/apperrors"
)

func TestService_Append(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	when := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	mockRepo.On("Create", mock.AnythingOfType("*entry.Entry")).Run(func(args mock.Arguments) {
		args.Get(0).(*Entry).ID = 42
	}).Return(nil)

	e, err := service.Append(1, OutcomeWin, "rival", "close one", when)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), e.ID)
	assert.Equal(t, uint(1), e.UserID)
	assert.Equal(t, OutcomeWin, e.Outcome)
	assert.Equal(t, when, e.OccurredAt)
	mockRepo.AssertExpectations(t)
}

func TestService_Append_DefaultsTimestamp(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*entry.Entry")).Return(nil)

	e, err := service.Append(1, OutcomeLose, "rival", "", time.Time{})
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), e.OccurredAt, time.Second)
}

func TestService_Append_Invalid(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	cases := []struct {
		name     string
		outcome  int
		opponent string
		comment  string
	}{
		{"outcome zero", 0, "rival", ""},
		{"outcome draw code", 3, "rival", ""},
		{"opponent too long", OutcomeWin, "abcdefghijk", ""},
		{"comment too long", OutcomeWin, "rival", "abcdefghijklmnopqrstu"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Append(1, tc.outcome, tc.opponent, tc.comment, time.Time{})
			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperrors.Code(err))
		})
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestService_Delete_Owner(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	mockRepo.On("FindByID", uint(5)).Return(&Entry{ID: 5, UserID: 1}, nil)
	mockRepo.On("Delete", uint(5)).Return(nil)

	err := service.Delete(5, 1)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Delete_OtherUser(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	mockRepo.On("FindByID", uint(5)).Return(&Entry{ID: 5, UserID: 1}, nil)

	err := service.Delete(5, 2)
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperrors.Code(err))
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestService_Delete_Missing(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	mockRepo.On("FindByID", uint(9)).Return(nil, nil)

	err := service.Delete(9, 1)
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.Code(err))
}

func TestService_ListRecent(t *testing.T) {
	mockRepo := &RepositoryMock{}
	service := NewService(mockRepo)

	stored := []Entry{{ID: 2, UserID: 1, Outcome: OutcomeWin}}
	mockRepo.On("ListRecent", uint(1), 1).Return(stored, nil)

	entries, err := service.ListRecent(1, 1)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, uint(2), entries[0].ID)
}
