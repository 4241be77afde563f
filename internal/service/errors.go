package service

import "errors"

// Sentinel errors translated by the API layer into HTTP responses.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrDuplicateItem        = errors.New("item with this name already exists")
	ErrItemUnavailable      = errors.New("inventory item missing or insufficient stock")
	ErrItemInUse            = errors.New("item is referenced by activities")
	ErrUnknownFarm          = errors.New("unknown farm")
	ErrAssistantUnavailable = errors.New("assistant is not configured")
)
