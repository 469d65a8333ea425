//go:build unit

package repository_test

import "github.com/jackc/pgx/v5/pgconn"

func fkViolation() error {
	return &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}
