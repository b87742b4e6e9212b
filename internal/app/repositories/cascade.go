package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lramirez/acredita/internal/db"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
	"github.com/lramirez/acredita/internal/pkg/logger"
)

// DependencyCounts maps a dependency class name to the number of rows
// that would be removed along with the target.
type DependencyCounts map[string]int64

// Total sums the counts across all classes.
func (c DependencyCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}

// DeleteReport accumulates affected rows per class for a completed delete,
// including one entry for the target entity itself.
type DeleteReport map[string]int64

// CascadeStep is one leaf-first delete statement executed before the
// target row is removed. Steps that share a Class have their affected
// rows summed in the report.
type CascadeStep struct {
	Class string
	SQL   string
}

// CascadeSpec declares, for one entity instance, how to count its
// dependents and how to remove them. Every statement receives the same
// positional argument tuple, so placeholders are stable across the
// count query and every step.
type CascadeSpec struct {
	// Entity is the report class for the target row.
	Entity string
	// Args is the shared positional argument tuple.
	Args []any
	// CountSQL selects one row whose columns are scalar subquery counts,
	// in the same order as CountClasses.
	CountSQL string
	// CountClasses names the columns of CountSQL.
	CountClasses []string
	// Steps run in order inside the transaction before TargetSQL.
	Steps []CascadeStep
	// TargetSQL removes the target row itself.
	TargetSQL string
	// NotFound is returned when TargetSQL affects no rows.
	NotFound error
}

// Cascader implements the two phase delete protocol shared by every
// entity: count dependents in a single round trip, refuse with the
// counts unless forced, then remove dependents and target atomically.
type Cascader struct {
	database *db.PostgresDB
}

// NewCascader creates a Cascader on the shared pool.
func NewCascader(database *db.PostgresDB) *Cascader {
	return &Cascader{database: database}
}

// CountDependencies runs the count query of a CascadeSpec and returns
// the per-class totals.
func (c *Cascader) CountDependencies(ctx context.Context, spec CascadeSpec) (DependencyCounts, error) {
	dest := make([]int64, len(spec.CountClasses))
	ptrs := make([]any, len(dest))
	for i := range dest {
		ptrs[i] = &dest[i]
	}

	if err := c.database.Pool.QueryRow(ctx, spec.CountSQL, spec.Args...).Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("counting dependencies of %s: %w", spec.Entity, err)
	}

	counts := make(DependencyCounts, len(spec.CountClasses))
	for i, class := range spec.CountClasses {
		counts[class] = dest[i]
	}
	return counts, nil
}

// Delete runs the full protocol for one entity instance. Without force it
// refuses with a DependencyError whenever any dependents exist. With
// force, or when nothing depends on the target, it deletes leaf first
// inside one transaction and reports affected rows per class. A target
// that affects no rows rolls everything back and yields spec.NotFound.
func (c *Cascader) Delete(ctx context.Context, spec CascadeSpec, force bool) (DeleteReport, DependencyCounts, error) {
	counts, err := c.CountDependencies(ctx, spec)
	if err != nil {
		return nil, nil, err
	}

	if !force && counts.Total() > 0 {
		return nil, counts, &apperrors.DependencyError{
			Entity: spec.Entity,
			Counts: counts,
		}
	}

	report := make(DeleteReport, len(spec.Steps)+1)
	err = c.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, step := range spec.Steps {
			tag, err := tx.Exec(ctx, step.SQL, spec.Args...)
			if err != nil {
				return fmt.Errorf("cascade step %s of %s: %w", step.Class, spec.Entity, err)
			}
			report[step.Class] += tag.RowsAffected()
		}

		tag, err := tx.Exec(ctx, spec.TargetSQL, spec.Args...)
		if err != nil {
			return fmt.Errorf("deleting %s: %w", spec.Entity, err)
		}
		if tag.RowsAffected() == 0 {
			return spec.NotFound
		}
		report[spec.Entity] = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return nil, counts, err
	}

	logger.Info().
		Str("entity", spec.Entity).
		Bool("forced", force).
		Int64("dependents", counts.Total()).
		Msg("Cascade delete completed")
	return report, counts, nil
}
