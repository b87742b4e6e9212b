package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// Repositories hand WithTransaction closures of exactly this shape; the
// assignment keeps the callback contract from drifting.
func TestTransactionFnShape(t *testing.T) {
	var fn TransactionFn = func(ctx context.Context, tx pgx.Tx) error {
		return nil
	}
	require.NoError(t, fn(context.Background(), nil))
}
