package models

// User represents a registered account. Usernames are unique; emails are only
// checked for uniqueness at registration time, not by a DB constraint.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:150;unique;not null"`
	Email        string `gorm:"size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	FirstName    string `gorm:"size:30"`
	LastName     string `gorm:"size:150"`
	Roles        string `gorm:"size:100"`
}
