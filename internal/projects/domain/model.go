package domain

import "time"

// Categories is the closed set a project category is drawn from.
var Categories = []string{"AI", "MERN", "Freelance", "Other"}

const DefaultCategory = "MERN"

// Project is a portfolio showcase entry.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Metrics     string    `json:"metrics"`
	Tech        []string  `json:"tech"`
	DemoURL     string    `json:"demo_url"`
	GitHubURL   string    `json:"github_url"`
	Featured    bool      `json:"featured"`
	Category    string    `json:"category"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"created_at"`
}
