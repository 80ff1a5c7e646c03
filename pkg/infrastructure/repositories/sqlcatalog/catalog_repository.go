package sqlcatalog

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/panelworks/tankquote/pkg/domain/entities"
	"github.com/panelworks/tankquote/pkg/domain/repositories"
)

const schema = `
CREATE TABLE IF NOT EXISTS parts (
	part_no    TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	price_usd  TEXT NOT NULL DEFAULT '0',
	weight_kg  TEXT NOT NULL DEFAULT '0'
);`

// partRow is the database row shape. Money and weight are stored as
// decimal strings so no float rounding leaks into the data.
type partRow struct {
	PartNo   string `db:"part_no"`
	Name     string `db:"name"`
	PriceUSD string `db:"price_usd"`
	WeightKg string `db:"weight_kg"`
}

// CatalogRepository serves the parts master from a SQLite database.
// SQLite handles concurrent readers natively, so Resolve and List query
// directly instead of holding an in-process snapshot.
type CatalogRepository struct {
	db *sqlx.DB
}

// Open opens (and if needed bootstraps) a catalog database at path.
func Open(path string) (*CatalogRepository, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap catalog schema: %w", err)
	}
	return &CatalogRepository{db: db}, nil
}

// Verify interface compliance
var _ repositories.PartCatalog = (*CatalogRepository)(nil)

// Close releases the database handle.
func (r *CatalogRepository) Close() error {
	return r.db.Close()
}

// Import upserts a batch of catalog records in one transaction.
func (r *CatalogRepository) Import(ctx context.Context, parts []entities.PartInfo) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	const upsert = `
INSERT INTO parts (part_no, name, price_usd, weight_kg)
VALUES (:part_no, :name, :price_usd, :weight_kg)
ON CONFLICT(part_no) DO UPDATE SET
	name = excluded.name,
	price_usd = excluded.price_usd,
	weight_kg = excluded.weight_kg`

	for _, p := range parts {
		row := partRow{
			PartNo:   string(p.PartNo),
			Name:     p.Name,
			PriceUSD: p.UnitPrice.String(),
			WeightKg: p.UnitWeight.String(),
		}
		if _, err := tx.NamedExecContext(ctx, upsert, row); err != nil {
			return fmt.Errorf("import part %s: %w", p.PartNo, err)
		}
	}
	return tx.Commit()
}

// Resolve returns the catalog record for a part number. Unknown parts
// and query failures both return a zero-valued record with Found=false;
// a catalog gap must degrade one line, not abort the calculation.
func (r *CatalogRepository) Resolve(partNo entities.PartNumber) entities.PartInfo {
	var row partRow
	err := r.db.Get(&row, `SELECT part_no, name, price_usd, weight_kg FROM parts WHERE part_no = ?`, string(partNo))
	if err != nil {
		// Query failures surface via the unresolved-part path, same as
		// sql.ErrNoRows.
		return entities.PartInfo{PartNo: partNo}
	}
	return rowToInfo(row)
}

// List returns up to limit records starting at offset in part-number
// order.
func (r *CatalogRepository) List(offset, limit int) []entities.PartInfo {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	var rows []partRow
	err := r.db.Select(&rows, `SELECT part_no, name, price_usd, weight_kg FROM parts ORDER BY part_no LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil
	}
	out := make([]entities.PartInfo, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToInfo(row))
	}
	return out
}

// Len reports the total record count.
func (r *CatalogRepository) Len() int {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM parts`); err != nil {
		return 0
	}
	return n
}

func rowToInfo(row partRow) entities.PartInfo {
	price, err := decimal.NewFromString(row.PriceUSD)
	if err != nil {
		price = decimal.Zero
	}
	weight, err := decimal.NewFromString(row.WeightKg)
	if err != nil {
		weight = decimal.Zero
	}
	return entities.PartInfo{
		PartNo:     entities.PartNumber(row.PartNo),
		Name:       row.Name,
		UnitPrice:  price,
		UnitWeight: weight,
		Found:      true,
	}
}
