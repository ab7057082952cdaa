package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/reitmaier/banjara-api/internal/errors"
)

// HandlePostgresError converts PostgreSQL-specific errors to appropriate AppError codes
func HandlePostgresError(err error, operation string) *apperrors.AppError {
	if err == nil {
		return nil
	}

	// Check if it's a PostgreSQL error
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		// Not a PostgreSQL error, return generic internal error
		return apperrors.Wrap(err, apperrors.CodeInternal, operation)
	}

	// Map PostgreSQL error codes to AppError codes
	switch pgErr.Code {
	case "23505": // UNIQUE_VIOLATION
		return handleUniqueViolation(pgErr)

	case "23503": // FOREIGN_KEY_VIOLATION
		return handleForeignKeyViolation(pgErr)

	case "23502": // NOT_NULL_VIOLATION
		return apperrors.Wrap(err, apperrors.CodeInvalidArg, "required field is missing")

	case "23514": // CHECK_VIOLATION
		return apperrors.Wrap(err, apperrors.CodeInvalidArg, "data violates check constraint")

	case "42P01": // UNDEFINED_TABLE
		return apperrors.Wrap(err, apperrors.CodeInternal, "database schema error: table not found")

	case "42703": // UNDEFINED_COLUMN
		return apperrors.Wrap(err, apperrors.CodeInternal, "database schema error: column not found")

	case "08000", "08003", "08006": // CONNECTION_EXCEPTION variants
		return apperrors.Wrap(err, apperrors.CodeInternal, "database connection error")

	case "53300": // TOO_MANY_CONNECTIONS
		return apperrors.Wrap(err, apperrors.CodeInternal, "database connection limit reached")

	default:
		// Unknown PostgreSQL error, return with error code for debugging
		message := "database error (PostgreSQL code: " + pgErr.Code + ")"
		return apperrors.Wrap(err, apperrors.CodeInternal, message)
	}
}

// handleUniqueViolation provides specific error messages for different unique constraints
func handleUniqueViolation(pgErr *pgconn.PgError) *apperrors.AppError {
	constraintName := pgErr.ConstraintName

	switch {
	case strings.Contains(constraintName, "photos_hash"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "photo with this hash already exists")

	case strings.Contains(constraintName, "photos_alias"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "photo with this alias already exists")

	case strings.Contains(constraintName, "audio_hash"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "audio with this hash already exists")

	case strings.Contains(constraintName, "queries_sample_id"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "query with this sample id already exists")

	case strings.Contains(constraintName, "queries"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "query with this id already exists")

	case strings.Contains(constraintName, "query_results"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "result for this query and photo already exists")

	default:
		// Generic unique violation
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "resource already exists")
	}
}

// handleForeignKeyViolation provides specific error messages for foreign key constraints
func handleForeignKeyViolation(pgErr *pgconn.PgError) *apperrors.AppError {
	constraintName := pgErr.ConstraintName

	switch {
	case strings.Contains(constraintName, "photo_id"):
		return apperrors.Wrap(pgErr, apperrors.CodeDependency, "referenced photo does not exist")

	case strings.Contains(constraintName, "query_id"):
		return apperrors.Wrap(pgErr, apperrors.CodeDependency, "referenced query does not exist")

	default:
		// Generic foreign key violation
		return apperrors.Wrap(pgErr, apperrors.CodeDependency, "referenced resource does not exist")
	}
}
