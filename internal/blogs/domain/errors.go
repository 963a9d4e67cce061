package domain

import "errors"

var (
	ErrNotFound = errors.New("blog not found")
	// ErrSlugTaken is returned when another post already uses the slug.
	ErrSlugTaken = errors.New("blog slug already exists")
	// ErrInvalidSlug means neither the slug nor the title yields a usable slug.
	ErrInvalidSlug = errors.New("blog slug is empty")
)
