package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/geoscape/internal/game/inventory"
)

// ErrBaseNotFound is returned when no stock or limits are stored for a base.
var ErrBaseNotFound = errors.New("base stock not found")

// StockRepository persists base storage: item quantities and per-item stock limits.
type StockRepository struct {
	db *pgxpool.Pool
}

// NewStockRepository creates a StockRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewStockRepository(db *pgxpool.Pool) *StockRepository {
	return &StockRepository{db: db}
}

// stockRow is one (item type, count) pair written to either table.
type stockRow struct {
	itemType string
	n        int
}

// sortedRows flattens m into rows ordered by item type, skipping empty IDs.
func sortedRows(m map[string]int) []stockRow {
	rows := make([]stockRow, 0, len(m))
	for id, n := range m {
		if id == "" {
			continue
		}
		rows = append(rows, stockRow{itemType: id, n: n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].itemType < rows[j].itemType })
	return rows
}

// SaveStock replaces the stored quantities and limits of baseID with the
// contents of c in a single transaction.
//
// Precondition: baseID must be non-empty; c must be non-nil.
// Postcondition: on success the stored rows equal c.Contents() and c.SaveLimits().
func (r *StockRepository) SaveStock(ctx context.Context, baseID string, c *inventory.LimitedContainer) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning stock transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM base_items WHERE base_id = $1`, baseID); err != nil {
		return fmt.Errorf("clearing base items: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM base_item_limits WHERE base_id = $1`, baseID); err != nil {
		return fmt.Errorf("clearing base item limits: %w", err)
	}

	if err := copyRows(ctx, tx, "base_items", "quantity", baseID, sortedRows(c.Contents())); err != nil {
		return err
	}
	if err := copyRows(ctx, tx, "base_item_limits", "max_qty", baseID, sortedRows(c.SaveLimits())); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing stock: %w", err)
	}
	return nil
}

func copyRows(ctx context.Context, tx pgx.Tx, table, column, baseID string, rows []stockRow) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{table},
		[]string{"base_id", "item_type", column},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			return []any{baseID, rows[i].itemType, rows[i].n}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", table, err)
	}
	return nil
}

// LoadStock restores the quantities and limits stored for baseID into c.
// Quantities are restored as saved; limits are not re-applied to them.
//
// Precondition: c must be non-nil.
// Postcondition: returns ErrBaseNotFound and leaves c untouched when nothing is stored for baseID.
func (r *StockRepository) LoadStock(ctx context.Context, baseID string, c *inventory.LimitedContainer) error {
	items, err := r.queryCounts(ctx, `SELECT item_type, quantity FROM base_items WHERE base_id = $1`, baseID)
	if err != nil {
		return fmt.Errorf("loading base items: %w", err)
	}
	limits, err := r.queryCounts(ctx, `SELECT item_type, max_qty FROM base_item_limits WHERE base_id = $1`, baseID)
	if err != nil {
		return fmt.Errorf("loading base item limits: %w", err)
	}
	if len(items) == 0 && len(limits) == 0 {
		return ErrBaseNotFound
	}
	c.Restore(items)
	c.LoadLimits(limits)
	return nil
}

func (r *StockRepository) queryCounts(ctx context.Context, query, baseID string) (map[string]int, error) {
	rows, err := r.db.Query(ctx, query, baseID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int)
	var (
		id string
		n  int
	)
	_, err = pgx.ForEachRow(rows, []any{&id, &n}, func() error {
		out[id] = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
