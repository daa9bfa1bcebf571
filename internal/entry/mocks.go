package entry

import "github.com/stretchr/testify/mock"

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) Create(e *Entry) error {
	args := m.Called(e)
	return args.Error(0)
}

func (m *RepositoryMock) FindByID(id uint) (*Entry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Entry), args.Error(1)
}

func (m *RepositoryMock) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *RepositoryMock) ListRecent(userID uint, limit int) ([]Entry, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *RepositoryMock) ListAllRecent(limit int) ([]FeedItem, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FeedItem), args.Error(1)
}
