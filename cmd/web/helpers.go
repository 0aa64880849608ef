package main

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/PlanetSoftweb/sppl/internal/httputil"
	"github.com/PlanetSoftweb/sppl/internal/service"
)

// serviceError maps service-layer failures onto HTTP responses.
func serviceError(w http.ResponseWriter, err error, notFoundMsg string, failMsg string) {
	var invalid service.ValidationError
	switch {
	case errors.As(err, &invalid):
		httputil.BadRequest(w, invalid.Error(), nil)
	case errors.Is(err, sql.ErrNoRows):
		httputil.NotFound(w, notFoundMsg, err)
	case errors.Is(err, service.ErrIncorrectPassword):
		httputil.Unauthorized(w, "Incorrect password")
	case errors.Is(err, service.ErrNotOwner):
		httputil.Forbidden(w, err.Error())
	case errors.Is(err, service.ErrSportDisabled),
		errors.Is(err, service.ErrTeamExists),
		errors.Is(err, service.ErrRosterFull),
		errors.Is(err, service.ErrLinkInactive),
		errors.Is(err, service.ErrRequestNotOpen),
		errors.Is(err, service.ErrMatchNotOpen),
		errors.Is(err, service.ErrWinnerNotInMatch):
		httputil.BadRequest(w, err.Error(), nil)
	default:
		httputil.InternalServerError(w, failMsg, err)
	}
}
