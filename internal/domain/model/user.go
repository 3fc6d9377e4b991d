package model

import "time"

// User is a registered account. Usernames and emails are unique; the password
// is stored only as a bcrypt hash.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
