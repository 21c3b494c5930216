package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/barbershop-api/internal/errs"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, InvalidTextRepresentation, MapCode("22P02"))
	assert.Equal(t, InvalidDatetimeFormat, MapCode("22007"))
	assert.Equal(t, DatetimeFieldOverflow, MapCode("22008"))
	assert.Equal(t, Other, MapCode("08006"))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("ERROR"))
	assert.Equal(t, SeverityError, MapSeverity("whatever"))
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505"})
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("insert: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(converted, &pgErr))
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name: "booking references missing master",
			err: &pgconn.PgError{
				Code:           "23503",
				TableName:      "bookings",
				ConstraintName: "bookings_master_id_fkey",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "MASTER_NOT_FOUND",
			wantMessage: "The referenced Master does not exist",
		},
		{
			name: "duplicate phone",
			err: &pgconn.PgError{
				Code:           "23505",
				TableName:      "users",
				ConstraintName: "users_phone_key",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "USER_ALREADY_EXISTS",
			wantMessage: "A User with this Phone already exists",
		},
		{
			name: "not null",
			err: &pgconn.PgError{
				Code:       "23502",
				TableName:  "users",
				ColumnName: "name",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "USER_REQUIRED",
			wantMessage: "The Name is required",
		},
		{
			name: "check violation",
			err: &pgconn.PgError{
				Code:       "23514",
				TableName:  "masters",
				ColumnName: "rating",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "MASTER_INVALID",
			wantMessage: "The Rating value does not meet required conditions",
		},
		{
			name:        "invalid date",
			err:         &pgconn.PgError{Code: "22007"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "RECORD_INVALID",
			wantMessage: "One or more values have an invalid format",
		},
		{
			name:        "connection failure hides details",
			err:         &pgconn.PgError{Code: "08006", Message: "connection failure on 10.0.0.5"},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "Internal Server Error",
		},
		{
			name:        "no rows",
			err:         fmt.Errorf("get booking: %w", pgx.ErrNoRows),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Resource not found",
		},
		{
			name:        "unknown error",
			err:         errors.New("dial tcp: i/o timeout"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.True(t, errors.As(HandleError(tt.err), &httpErr))
			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMessage, httpErr.Message)
		})
	}
}

func TestHandleError_NotNullFieldErrors(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23502", TableName: "bookings", ColumnName: "booking_time"})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "booking_time", httpErr.Errors[0].Field)
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("Booking not found", true, nil)
	assert.Same(t, original, HandleError(original))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "phone", extractColumnForUniqueViolation("users_phone_key"))
	assert.Equal(t, "phone", extractColumnForUniqueViolation("unique_users_phone"))
	assert.Equal(t, "", extractColumnForUniqueViolation("users_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "booking", singular("bookings"))
	assert.Equal(t, "bonus_history", singular("bonus_histories"))
	assert.Equal(t, "salon", singular("salons"))
}
