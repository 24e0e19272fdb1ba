package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("no token provided")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError reports a malformed or incomplete request. Nothing was written.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// notFound maps gorm's missing-row error onto ErrNotFound and wraps the rest.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to load %s: %w", what, err)
}

// ListOptions controls the shared list semantics of every content service.
// Public reads leave IncludeHidden false; admin screens set it.
type ListOptions struct {
	IncludeHidden bool
	Limit         int
}

func (o ListOptions) apply(db *gorm.DB) *gorm.DB {
	if o.Limit > 0 {
		db = db.Limit(o.Limit)
	}
	return db
}
