package middleware

import (
	"go-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)
	ErrMissingActor  = apperror.New(apperror.CodeUnauthorized, "Token does not identify an operator", http.StatusUnauthorized)
	ErrInProgress    = apperror.New("PROCESSING", "The same request is still being processed", http.StatusConflict)

	errTooManyRequests = apperror.ErrTooManyRequests
)
