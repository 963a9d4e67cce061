package domain

import "time"

// PricingQuote is one submitted quote request. Only Contacted changes after creation.
type PricingQuote struct {
	ID           string    `json:"id"`
	ProjectType  string    `json:"project_type"`
	Features     []string  `json:"features"`
	TotalPrice   int       `json:"total_price"`
	TimelineDays int       `json:"timeline_days"`
	Contacted    bool      `json:"contacted"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuoteRequest is the public calculator input.
type QuoteRequest struct {
	ProjectType string
	Features    []string
}

// Quote is the calculator answer.
type Quote struct {
	TotalPrice   int `json:"total_price"`
	TimelineDays int `json:"timeline_days"`
}
