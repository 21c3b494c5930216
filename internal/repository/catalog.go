package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/deppfellow/barbershop-api/internal/model/catalog"
)

// CatalogRepository reads the salon catalog. Rows are returned as
// column-name maps since the catalog tables are not owned by this service.
type CatalogRepository struct {
	db DBTX
}

func NewCatalogRepository(db DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const (
	listSalonsSQL = `SELECT * FROM salons ORDER BY id`

	listMastersSQL = `
SELECT m.*, s.name AS salon_name
FROM masters m
	JOIN salons s ON m.salon_id = s.id
ORDER BY m.rating DESC`

	listMastersBySalonSQL = `
SELECT m.*, s.name AS salon_name
FROM masters m
	JOIN salons s ON m.salon_id = s.id
WHERE m.salon_id = $1
ORDER BY m.rating DESC`

	listServicesSQL = `SELECT * FROM services ORDER BY price`

	listActivePromotionsSQL = `
SELECT * FROM promotions
WHERE is_active = true
	AND (valid_until IS NULL OR valid_until >= CURRENT_DATE)
ORDER BY created_at DESC`
)

func (r *CatalogRepository) ListSalons(ctx context.Context) ([]catalog.Row, error) {
	return r.list(ctx, "salons", listSalonsSQL)
}

// ListMasters returns masters with their salon name, best rated first.
// A zero salonID lists masters of every salon.
func (r *CatalogRepository) ListMasters(ctx context.Context, salonID int) ([]catalog.Row, error) {
	if salonID == 0 {
		return r.list(ctx, "masters", listMastersSQL)
	}
	return r.list(ctx, "masters", listMastersBySalonSQL, salonID)
}

func (r *CatalogRepository) ListServices(ctx context.Context) ([]catalog.Row, error) {
	return r.list(ctx, "services", listServicesSQL)
}

// ListActivePromotions returns active promotions that have not expired.
func (r *CatalogRepository) ListActivePromotions(ctx context.Context) ([]catalog.Row, error) {
	return r.list(ctx, "promotions", listActivePromotionsSQL)
}

func (r *CatalogRepository) list(ctx context.Context, table, sql string, args ...any) ([]catalog.Row, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}

	result, err := pgx.CollectRows(rows, rowToJSONMap)
	if err != nil {
		return nil, fmt.Errorf("failed to collect %s: %w", table, err)
	}

	return result, nil
}

// rowToJSONMap works like pgx.RowToMap but converts values whose default
// JSON encoding is not useful to clients.
func rowToJSONMap(row pgx.CollectableRow) (catalog.Row, error) {
	values, err := row.Values()
	if err != nil {
		return nil, err
	}

	fields := row.FieldDescriptions()
	m := make(catalog.Row, len(fields))
	for i := range fields {
		m[fields[i].Name] = jsonValue(fields[i].DataTypeOID, values[i])
	}

	return m, nil
}

func jsonValue(oid uint32, v any) any {
	switch val := v.(type) {
	case time.Time:
		if oid == pgtype.DateOID {
			return val.Format(time.DateOnly)
		}
	case pgtype.Time:
		if !val.Valid {
			return nil
		}
		d := time.Duration(val.Microseconds) * time.Microsecond
		return fmt.Sprintf("%02d:%02d:%02d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
	case [16]byte:
		return uuid.UUID(val).String()
	}
	return v
}
