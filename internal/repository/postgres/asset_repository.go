package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/domain"
	"github.com/asset-map-service/internal/domain/repository"
	"github.com/asset-map-service/internal/pkg/errors"
)

// DefaultAssetLimit — сколько последних активов отдаётся без явного лимита
const DefaultAssetLimit = 7000

// MaxAssetLimit — верхняя граница лимита выборки
const MaxAssetLimit = 50000

type assetRepository struct {
	db     *DB
	logger *zap.Logger
}

// assetRow — строка таблицы assets; координаты хранятся текстом как в исходной выгрузке
type assetRow struct {
	Tag        string         `db:"tag"`
	Latitude   sql.NullString `db:"latitud"`
	Longitude  sql.NullString `db:"longitud"`
	Company    string         `db:"empresa"`
	Substation string         `db:"nombre_subestacion"`
	Status     string         `db:"tag_estado"`
	Brand      string         `db:"tag_marca"`
}

// NewAssetRepository создает репозиторий активов поверх PostgreSQL
func NewAssetRepository(db *DB) repository.AssetRepository {
	return &assetRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *assetRepository) Name() string {
	return "postgres"
}

// ListAssets возвращает последние активы (created_at DESC) с учётом фильтра
func (r *assetRepository) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.AssetRecord, error) {
	query, args := buildAssetQuery(filter)

	var rows []assetRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("failed to list assets", zap.Error(err))
		return nil, classifyError(err)
	}

	records := make([]domain.AssetRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}

	r.logger.Debug("assets listed",
		zap.Int("count", len(records)),
		zap.Int("limit", effectiveLimit(filter.Limit)))

	return records, nil
}

// buildAssetQuery собирает запрос; пустые списки фильтра не ограничивают выборку
func buildAssetQuery(filter domain.AssetFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	addArray := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		args = append(args, pq.Array(values))
		conds = append(conds, fmt.Sprintf("%s = ANY($%d)", column, len(args)))
	}

	addArray("tag_estado", filter.Statuses)
	addArray("nombre_subestacion", filter.Substations)
	addArray("empresa", filter.Companies)

	var b strings.Builder
	b.WriteString(`SELECT tag, latitud, longitud, empresa, nombre_subestacion, tag_estado, tag_marca FROM assets`)
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}

	args = append(args, effectiveLimit(filter.Limit))
	fmt.Fprintf(&b, " ORDER BY created_at DESC, id DESC LIMIT $%d", len(args))

	return b.String(), args
}

// classifyError отделяет ошибки, которые вернул сам сервер БД (SQLSTATE),
// от сетевых: первые помечаются ErrDatabaseError, вторые остаются недоступностью источника.
func classifyError(err error) error {
	var (
		pgErr *pgconn.PgError
		pqErr *pq.Error
	)
	switch {
	case stderrors.As(err, &pgErr):
		return fmt.Errorf("%w: list assets (sqlstate %s): %w", errors.ErrDatabaseError, pgErr.Code, err)
	case stderrors.As(err, &pqErr):
		return fmt.Errorf("%w: list assets (sqlstate %s): %w", errors.ErrDatabaseError, pqErr.Code, err)
	default:
		return fmt.Errorf("list assets: %w", err)
	}
}

func effectiveLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultAssetLimit
	case limit > MaxAssetLimit:
		return MaxAssetLimit
	default:
		return limit
	}
}

func (r assetRow) toRecord() domain.AssetRecord {
	rec := domain.AssetRecord{
		Tag:        r.Tag,
		Company:    r.Company,
		Substation: r.Substation,
		Status:     r.Status,
		Brand:      r.Brand,
	}
	// NULL остаётся nil и отбрасывается при преобразовании в GeoPoint
	if r.Latitude.Valid {
		rec.Latitude = r.Latitude.String
	}
	if r.Longitude.Valid {
		rec.Longitude = r.Longitude.String
	}
	return rec
}
