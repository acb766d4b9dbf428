package models

import "time"

// Snippet is a text note filed under exactly one tag and owned by exactly one
// user. Timestamp is refreshed by gorm on every save, not just on create.
// Deleting a user cascades to their snippets; the tag side carries no cascade,
// so tags are never removed by snippet activity.
type Snippet struct {
	ID        uint      `gorm:"primaryKey"`
	TagID     uint      `gorm:"not null;index"`
	Tag       Tag       `gorm:"foreignKey:TagID"`
	Content   string    `gorm:"size:1000;not null"`
	Timestamp time.Time `gorm:"autoUpdateTime"`
	OwnerID   uint      `gorm:"not null;index"`
	Owner     User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
