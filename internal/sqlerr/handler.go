package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/barbershop-api/internal/errs"
)

var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the mapped Code for err, or Other when err is not an *Error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError normalizes a raw Postgres error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds a machine-readable code such as BOOKING_NOT_FOUND
// or USER_ALREADY_EXISTS. For foreign keys the referenced entity is taken
// from the column (master_id -> MASTER), otherwise from the table.
func generateErrorCode(sqlErr *Error) string {
	domain := "RECORD"
	switch {
	case sqlErr.Code == ForeignKeyViolation && referencedEntity(sqlErr) != "":
		domain = strings.ToUpper(referencedEntity(sqlErr))
	case sqlErr.TableName != "":
		domain = strings.ToUpper(singular(sqlErr.TableName))
	}

	action := "ERROR"
	switch sqlErr.Code {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextRepresentation, InvalidDatetimeFormat, DatetimeFieldOverflow:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	switch sqlErr.Code {
	case ForeignKeyViolation:
		entity := referencedEntity(sqlErr)
		if entity == "" {
			entity = "record"
		}
		return fmt.Sprintf("The referenced %s does not exist", humanizeText(entity))

	case UniqueViolation:
		entity := "record"
		if sqlErr.TableName != "" {
			entity = humanizeText(singular(sqlErr.TableName))
		}
		field := "identifier"
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			field = humanizeText(column)
		}
		return fmt.Sprintf("A %s with this %s already exists", entity, field)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		if fieldName := humanizeText(sqlErr.ColumnName); fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case InvalidTextRepresentation, InvalidDatetimeFormat, DatetimeFieldOverflow:
		return "One or more values have an invalid format"

	default:
		return "An error occurred while processing your request"
	}
}

// referencedEntity extracts "master" from a foreign key failure on master_id.
// Postgres reports the column only inside the detail text, so the constraint
// name (bookings_master_id_fkey) is used as well.
func referencedEntity(sqlErr *Error) string {
	column := strings.ToLower(sqlErr.ColumnName)
	if column == "" && strings.HasSuffix(sqlErr.ConstraintName, "_fkey") {
		name := strings.TrimSuffix(sqlErr.ConstraintName, "_fkey")
		name = strings.TrimPrefix(name, sqlErr.TableName+"_")
		column = strings.ToLower(name)
	}
	if strings.HasSuffix(column, "_id") {
		return strings.TrimSuffix(column, "_id")
	}
	return ""
}

func singular(table string) string {
	if strings.HasSuffix(table, "ies") {
		return strings.TrimSuffix(table, "ies") + "y"
	}
	if strings.HasSuffix(table, "s") && len(table) > 1 {
		return table[:len(table)-1]
	}
	return table
}

// humanizeText converts "bonus_points" into "Bonus Points".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from constraint names
// shaped like unique_<table>_<column> or <table>_<column>_key.
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueKeyPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a database error into an *errs.HTTPError.
//
//   - *errs.HTTPError is returned unchanged.
//   - *pgconn.PgError is mapped by SQLSTATE: constraint and input-format
//     failures become 400, everything else 500.
//   - pgx.ErrNoRows / sql.ErrNoRows become a generic 404.
//   - Anything else becomes 500.
//
// The 500 variants never carry the driver message.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		errorCode := generateErrorCode(sqlErr)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation, UniqueViolation, CheckViolation,
			InvalidTextRepresentation, InvalidDatetimeFormat, DatetimeFieldOverflow:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
