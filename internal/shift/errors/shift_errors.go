package shifterrors

import (
	"net/http"

	"github.com/BenitoJD/ROTA-API/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"shift not found",
		http.StatusNotFound,
	)
	ErrInvalidShiftRange = apperror.New(
		apperror.CodeInvalidInput,
		"shift start time must be before end time",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"employee is not active",
		http.StatusUnprocessableEntity,
	)
	ErrShiftTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"shift type not found",
		http.StatusNotFound,
	)
	ErrShiftOverlap = apperror.New(
		apperror.CodeConflict,
		"employee already has a shift overlapping this time range",
		http.StatusConflict,
	)
)
