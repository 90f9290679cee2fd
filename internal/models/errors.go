package models

import "errors"

// Стандартные ошибки уровня приложения
var (
	// Common Resource/DB Errors
	ErrNotFound = errors.New("resource not found") // General not found

	// General Request/Server Errors
	ErrInternalServer = errors.New("internal server error")
	ErrInvalidInput   = errors.New("invalid input data")
)
