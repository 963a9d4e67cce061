package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("tech stack item not found")

var Categories = []string{"Frontend", "Backend", "AI", "Tools"}

const DefaultProficiency = 80

// Item is one skill shown in the tech stack grid. Lists sort by Order.
type Item struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Proficiency int       `json:"proficiency" db:"proficiency"`
	Order       int       `json:"order" db:"sort_order"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
