package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("contact not found")

// Contact is a contact-form submission. Only Replied changes afterwards.
type Contact struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	ProjectType string    `json:"project_type" db:"project_type"`
	Budget      string    `json:"budget" db:"budget"`
	Message     string    `json:"message" db:"message"`
	Replied     bool      `json:"replied" db:"replied"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
