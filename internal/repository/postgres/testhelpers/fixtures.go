package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// AssetFixture — строка для вставки в таблицу assets
type AssetFixture struct {
	Tag        string    `db:"tag"`
	Latitude   *string   `db:"latitud"`
	Longitude  *string   `db:"longitud"`
	Company    string    `db:"empresa"`
	Substation string    `db:"nombre_subestacion"`
	Status     string    `db:"tag_estado"`
	Brand      string    `db:"tag_marca"`
	CreatedAt  time.Time `db:"created_at"`
}

// Str возвращает указатель на строку для nullable колонок
func Str(s string) *string {
	return &s
}

// DefaultAssets — набор активов вокруг двух подстанций; последний без координат
func DefaultAssets() []AssetFixture {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []AssetFixture{
		{Tag: "T-1", Latitude: Str("-33.4489"), Longitude: Str("-70.6693"), Company: "Enel", Substation: "Alameda", Status: "operativo", Brand: "ABB", CreatedAt: base},
		{Tag: "T-2", Latitude: Str("-33.4490"), Longitude: Str("-70.6695"), Company: "Enel", Substation: "Alameda", Status: "mantencion", Brand: "Siemens", CreatedAt: base.Add(time.Hour)},
		{Tag: "T-3", Latitude: Str("-33.0472"), Longitude: Str("-71.6127"), Company: "Chilquinta", Substation: "Valparaiso", Status: "operativo", Brand: "ABB", CreatedAt: base.Add(2 * time.Hour)},
		{Tag: "T-4", Latitude: nil, Longitude: Str("-70.0"), Company: "Enel", Substation: "", Status: "operativo", Brand: "", CreatedAt: base.Add(3 * time.Hour)},
	}
}

// InsertAssets вставляет фикстуры активов
func InsertAssets(ctx context.Context, db *sqlx.DB, assets []AssetFixture) error {
	const query = `
		INSERT INTO assets (tag, latitud, longitud, empresa, nombre_subestacion, tag_estado, tag_marca, created_at)
		VALUES (:tag, :latitud, :longitud, :empresa, :nombre_subestacion, :tag_estado, :tag_marca, :created_at)`

	for _, a := range assets {
		if _, err := db.NamedExecContext(ctx, query, a); err != nil {
			return fmt.Errorf("insert asset %s: %w", a.Tag, err)
		}
	}
	return nil
}
