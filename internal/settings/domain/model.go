package domain

import (
	"errors"
	"time"
)

// Key is the primary key of the one settings row.
const Key = "site"

var ErrNotFound = errors.New("settings not found")

// Settings is the site configuration singleton.
type Settings struct {
	HeroTitle     string    `json:"hero_title" db:"hero_title"`
	HeroSubtitle  string    `json:"hero_subtitle" db:"hero_subtitle"`
	UsersServed   string    `json:"users_served" db:"users_served"`
	WhatsApp      string    `json:"whatsapp" db:"whatsapp"`
	Telegram      string    `json:"telegram" db:"telegram"`
	LinkedIn      string    `json:"linkedin" db:"linkedin"`
	GitHub        string    `json:"github" db:"github"`
	Email         string    `json:"email" db:"email"`
	TotalVisitors int64     `json:"total_visitors" db:"total_visitors"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Defaults is what a fresh site shows before the admin edits anything.
func Defaults() Settings {
	return Settings{
		HeroTitle:    "MERN + AI Developer",
		HeroSubtitle: "Building AI-powered platforms with 85% Job Match Accuracy.",
		UsersServed:  "500+",
		WhatsApp:     "+977-9800000000",
		Telegram:     "sudipsherpa",
		LinkedIn:     "sudipsherpa",
		GitHub:       "sudipsherpa",
		Email:        "admin@sudip.dev",
	}
}

// Patch holds the admin-editable fields. Nil leaves a field unchanged.
// The visitor counter is not editable.
type Patch struct {
	HeroTitle    *string `json:"hero_title"`
	HeroSubtitle *string `json:"hero_subtitle"`
	UsersServed  *string `json:"users_served"`
	WhatsApp     *string `json:"whatsapp"`
	Telegram     *string `json:"telegram"`
	LinkedIn     *string `json:"linkedin"`
	GitHub       *string `json:"github"`
	Email        *string `json:"email"`
}
