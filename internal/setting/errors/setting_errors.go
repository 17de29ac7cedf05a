package settingerrors

import (
	"go-payroll/internal/shared/apperror"
	"net/http"
)

var ErrInvalidDailyRate = apperror.New(
	apperror.CodeInvalidInput,
	"Daily rate must be a non-negative number",
	http.StatusBadRequest,
)
