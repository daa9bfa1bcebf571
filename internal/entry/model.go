package entry

import "time"

// Outcome codes as stored in records.outcome. There is no draw code.
const (
	OutcomeLose = 1
	OutcomeWin  = 2
)

const (
	OpponentMaxLen = 10
	CommentMaxLen  = 20
)

// Entry is one logged match result belonging to a user.
type Entry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Outcome    int       `gorm:"not null" json:"outcome"`
	Opponent   string    `gorm:"size:10" json:"opponent"`
	Comment    string    `gorm:"size:20" json:"comment"`
	OccurredAt time.Time `gorm:"index;not null" json:"occurred_at"`
}

func (Entry) TableName() string { return "records" }

// FeedItem is one row of the global feed, an entry joined with the name
// of the user who logged it.
type FeedItem struct {
	Entry
	Name string `json:"name"`
}
