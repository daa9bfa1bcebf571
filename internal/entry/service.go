package entry

import (
	"time"
	"unicode/utf8"

	"github.com/dainonaka/vsstats/internal/apperrors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Append records a match result for userID. The caller's id is taken from
// the authenticated session, never from the request body. A zero `when`
// means now.
func (s *Service) Append(userID uint, outcome int, opponent, comment string, when time.Time) (*Entry, error) {
	if outcome != OutcomeWin && outcome != OutcomeLose {
		return nil, apperrors.InvalidInput("outcome must be 1 (lose) or 2 (win)")
	}
	if utf8.RuneCountInString(opponent) > OpponentMaxLen {
		return nil, apperrors.InvalidInput("opponent must be at most 10 characters")
	}
	if utf8.RuneCountInString(comment) > CommentMaxLen {
		return nil, apperrors.InvalidInput("comment must be at most 20 characters")
	}
	if when.IsZero() {
		when = time.Now()
	}

	e := &Entry{
		UserID:     userID,
		Outcome:    outcome,
		Opponent:   opponent,
		Comment:    comment,
		OccurredAt: when,
	}
	if err := s.repo.Create(e); err != nil {
		return nil, apperrors.Internal("error saving entry", err)
	}
	return e, nil
}

// Delete removes an entry after checking that requesterID owns it. The
// ownership check reads the stored user_id, a client-asserted owner is
// never trusted.
func (s *Service) Delete(entryID, requesterID uint) error {
	e, err := s.repo.FindByID(entryID)
	if err != nil {
		return apperrors.Internal("error looking up entry", err)
	}
	if e == nil {
		return apperrors.NotFound("entry not found")
	}
	if e.UserID != requesterID {
		return apperrors.Unauthorized("entry belongs to another user")
	}
	if err := s.repo.Delete(entryID); err != nil {
		return apperrors.Internal("error deleting entry", err)
	}
	return nil
}

func (s *Service) ListRecent(userID uint, limit int) ([]Entry, error) {
	entries, err := s.repo.ListRecent(userID, limit)
	if err != nil {
		return nil, apperrors.Internal("error listing entries", err)
	}
	return entries, nil
}

func (s *Service) ListAllRecent(limit int) ([]FeedItem, error) {
	items, err := s.repo.ListAllRecent(limit)
	if err != nil {
		return nil, apperrors.Internal("error listing entries", err)
	}
	return items, nil
}
