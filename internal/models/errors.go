package models

import "errors"

// Ошибки, которые репозитории оборачивают через %w
var (
	ErrNotFound  = errors.New("record not found")
	ErrConflict  = errors.New("concurrent update conflict")
	ErrDuplicate = errors.New("duplicate record")
)
