package timeentryerrors

import (
	"go-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Overtime entry not found",
		http.StatusNotFound,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidTime = apperror.New(
		apperror.CodeInvalidInput,
		"Times must use the HH:MM format",
		http.StatusBadRequest,
	)
	ErrEndNotAfterStart = apperror.New(
		apperror.CodeInvalidInput,
		"End time must be after start time",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNotSalaried = apperror.New(
		apperror.CodeInvalidInput,
		"Overtime is recorded only for salaried employees",
		http.StatusBadRequest,
	)
	ErrPeriodAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"The period is already paid for this employee",
		http.StatusConflict,
	)
)
