package domain

import "time"

var Categories = []string{"MERN", "AI", "Freelancing", "Nepal Tech"}

// Blog is a post. Only published posts are visible publicly.
type Blog struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	FeaturedImage string    `json:"featured_image"`
	Published     bool      `json:"published"`
	Views         int64     `json:"views"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
