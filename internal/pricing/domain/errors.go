package domain

import "errors"

var ErrNotFound = errors.New("pricing quote not found")
