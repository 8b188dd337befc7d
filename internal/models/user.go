package models

// DefaultAvatarURL is stored whenever a user is created or reset without an
// avatar of their own.
const DefaultAvatarURL = "https://avatars.githubusercontent.com/u/583231?v=4"

type User struct {
	Username  string `gorm:"primaryKey;size:15" json:"username"`
	Name      string `gorm:"size:30;not null" json:"name"`
	AvatarURL string `gorm:"not null" json:"avatar_url"`
}
