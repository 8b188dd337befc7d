package models

type Topic struct {
	Slug        string `gorm:"primaryKey;size:50" json:"slug"`
	Description string `gorm:"not null" json:"description"`
}
