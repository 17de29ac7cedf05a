package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrActorRequired = apperror.New(
		apperror.CodeInvalidInput,
		"paid_by is required when the request is not authenticated",
		http.StatusBadRequest,
	)
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"no payment recorded for this employee and period",
		http.StatusNotFound,
	)
)
