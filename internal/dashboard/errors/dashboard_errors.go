package dashboarderrors

import (
	"net/http"

	"github.com/BenitoJD/ROTA-API/internal/shared/apperror"
)

var (
	ErrTeamNotFound = apperror.New(
		apperror.CodeNotFound,
		"team not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"startDate and endDate are required and startDate must not be after endDate",
		http.StatusBadRequest,
	)
)
