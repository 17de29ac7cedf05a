package employeeerrors

import (
	"go-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Employment type must be SALARIED or DAILY_RATE",
		http.StatusBadRequest,
	)
	ErrPayBandRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Salaried employees need a pay band",
		http.StatusBadRequest,
	)
	ErrInvalidPayBand = apperror.New(
		apperror.CodeInvalidInput,
		"Pay band must be between 1 and 4",
		http.StatusBadRequest,
	)
	ErrPayBandNotAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"Daily-rate employees cannot have a pay band",
		http.StatusBadRequest,
	)
	ErrPayBandNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pay band not found",
		http.StatusNotFound,
	)
	ErrEmployeeHasHistory = apperror.New(
		apperror.CodeConflict,
		"Employee has payroll history and cannot be removed",
		http.StatusConflict,
	)
	ErrInvalidBaseAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Base amount must be a non-negative number",
		http.StatusBadRequest,
	)
)
