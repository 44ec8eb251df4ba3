package repo

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	ErrNotFound   = errors.New("not found")
)

// GormRepo is the persistence handle shared by all handlers. It is
// constructed once at startup and closed by main; nothing holds
// ambient package-level database state.
type GormRepo struct {
	DB *gorm.DB
}
