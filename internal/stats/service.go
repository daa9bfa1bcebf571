package stats

import (
	"time"

	"github.com/dainonaka/vsstats/internal/apperrors"
	"github.com/dainonaka/vsstats/internal/entry"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// TotalPoints sums the raw outcome codes of all the user's entries: a win
// adds 2 and a loss adds 1. This is the historical bookkeeping, not a win
// count; keep it as is for compatibility with existing totals.
func (s *Service) TotalPoints(userID uint) (int, error) {
	codes, err := s.repo.Outcomes(userID)
	if err != nil {
		return 0, apperrors.Internal("error reading outcomes", err)
	}
	total := 0
	for _, code := range codes {
		total += code
	}
	return total, nil
}

// WindowCounts partitions the user's entries on or after windowStart by
// outcome code. No entries in the window means (0, 0).
func (s *Service) WindowCounts(userID uint, windowStart time.Time) (wins, losses int, err error) {
	codes, err := s.repo.OutcomesSince(userID, windowStart)
	if err != nil {
		return 0, 0, apperrors.Internal("error reading outcomes", err)
	}
	for _, code := range codes {
		switch code {
		case entry.OutcomeWin:
			wins++
		case entry.OutcomeLose:
			losses++
		}
	}
	return wins, losses, nil
}

// MonthStart is the default window start: midnight on the first day of
// now's calendar month.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
