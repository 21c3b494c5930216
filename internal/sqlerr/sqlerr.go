// Package sqlerr translates PostgreSQL errors into API errors.
//
// SQLSTATE codes are mapped to a small Code set and then to a 400 with a
// readable message and an entity-specific error code, e.g. a violated
// bookings_master_id_fkey becomes MASTER_NOT_FOUND.
package sqlerr
