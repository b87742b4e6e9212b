package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a storage error so callers never have to inspect
// vendor-specific SQLSTATE codes themselves.
type Kind int

const (
	// KindOther is any database error that is not specially handled.
	KindOther Kind = iota
	// KindDuplicate is a unique constraint violation (SQLSTATE 23505).
	KindDuplicate
	// KindMissingReference is a foreign key violation on insert/update
	// pointing at an absent parent row (SQLSTATE 23503).
	KindMissingReference
)

// Classify maps a pgx error to its Kind.
func Classify(err error) Kind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindOther
	}
	switch pgErr.Code {
	case "23505":
		return KindDuplicate
	case "23503":
		return KindMissingReference
	}
	return KindOther
}

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	return Classify(err) == KindDuplicate
}

// IsMissingReference reports whether err is a foreign key violation.
func IsMissingReference(err error) bool {
	return Classify(err) == KindMissingReference
}

// IsDuplicateConstraintError checks for a unique violation on a specific
// named constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}
