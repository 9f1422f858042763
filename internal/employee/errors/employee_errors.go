package employeeerrors

import (
	"net/http"

	"github.com/BenitoJD/ROTA-API/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrTeamNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"specified team does not exist",
		http.StatusBadRequest,
	)
)
