package user

import "time"

const NameMaxLen = 10

// User is a registered player. The bcrypt hash stays inside this package:
// it is never serialized and nothing exposes it for comparison outside
// Verify.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:10;uniqueIndex;not null" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
