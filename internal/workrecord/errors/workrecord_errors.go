package workrecorderrors

import (
	"go-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrDaysOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"Days worked must be between 0 and the number of days in the month",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNotDailyRate = apperror.New(
		apperror.CodeInvalidInput,
		"Days worked apply only to daily-rate employees",
		http.StatusBadRequest,
	)
	ErrPeriodAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"The period is already paid for this employee",
		http.StatusConflict,
	)
)
