package models

// Tag represents a shared label that snippets are filed under (e.g. "work",
// "ideas"). Titles are treated as unique by the lookup-or-create path, but
// there is deliberately no DB uniqueness constraint — see TagStore.GetOrCreate.
type Tag struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"size:255;not null"`
}
