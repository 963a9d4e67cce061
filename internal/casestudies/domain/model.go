package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("case study not found")

// CaseStudy is a client engagement write-up.
type CaseStudy struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ClientName  string    `json:"client_name"`
	Metrics     []string  `json:"metrics"`
	Description string    `json:"description"`
	ROI         string    `json:"roi"`
	ImageURL    string    `json:"image_url"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}
