package leaveerrors

import (
	"net/http"

	"github.com/BenitoJD/ROTA-API/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaveRange = apperror.New(
		apperror.CodeInvalidInput,
		"leave start date must be before end date",
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
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"employee already has approved leave overlapping this period",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"leave request status does not allow this transition",
		http.StatusUnprocessableEntity,
	)
	ErrNotOwnRequest = apperror.New(
		apperror.CodeForbidden,
		"leave requests may only be created for your own employee record",
		http.StatusForbidden,
	)
)
