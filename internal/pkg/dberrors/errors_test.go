package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505"},
			want: KindDuplicate,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503"},
			want: KindMissingReference,
		},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("error creating carrera: %w", &pgconn.PgError{Code: "23505"}),
			want: KindDuplicate,
		},
		{
			name: "other sqlstate",
			err:  &pgconn.PgError{Code: "42P01"},
			want: KindOther,
		},
		{
			name: "non-pg error",
			err:  errors.New("connection refused"),
			want: KindOther,
		},
		{
			name: "nil",
			err:  nil,
			want: KindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "usuarios_email_key"}

	assert.True(t, IsDuplicateConstraintError(err, "usuarios_email_key"))
	assert.False(t, IsDuplicateConstraintError(err, "carreras_pkey"))
	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), "usuarios_email_key"))
}

func TestIsDuplicateAndIsMissingReference(t *testing.T) {
	assert.True(t, IsDuplicate(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsDuplicate(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsMissingReference(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsMissingReference(errors.New("boom")))
}
