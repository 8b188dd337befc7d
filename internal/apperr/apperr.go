package apperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Error carries the HTTP status and client-facing message decided at the
// site that detected the failure. Handlers forward it untouched.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

func Invalid(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Msg: msg}
}

// SQLSTATE codes the translator recognizes.
const (
	pgInvalidTextRepresentation = "22P02"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
)

// Translate maps any error to the (status, msg) pair sent to the client.
// Errors already carrying a status pass through verbatim, recognized driver
// errors get their conventional mapping, everything else is a 500. The
// returned flag marks errors worth logging before they leave the process.
func Translate(err error) (status int, msg string, unexpected bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Msg, false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation:
			return http.StatusBadRequest, "Invalid request", false
		case pgForeignKeyViolation:
			return http.StatusNotFound, "Data not found", false
		case pgUniqueViolation:
			return http.StatusUnprocessableEntity, "Already exists", false
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "Data not found", false
	}

	return http.StatusInternalServerError, "Internal server error", true
}
