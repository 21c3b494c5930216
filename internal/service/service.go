// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data. Expected outcomes such as "not found" are returned
// as *errs.HTTPError values; unexpected failures are returned wrapped
// so the error handler can log them.
package service

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/barbershop-api/internal/errs"
	"github.com/deppfellow/barbershop-api/internal/sqlerr"
)

// dbError turns client-caused database errors (constraint and input format
// violations) into 400 responses. Everything else is returned unchanged.
func dbError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	var httpErr *errs.HTTPError
	if errors.As(sqlerr.HandleError(err), &httpErr) && httpErr.Status < http.StatusInternalServerError {
		return httpErr
	}

	return err
}

func notFound(message, code string) *errs.HTTPError {
	return errs.NewNotFoundError(message, true, &code)
}
