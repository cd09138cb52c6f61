package postgres

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asset-map-service/internal/domain"
	apperrors "github.com/asset-map-service/internal/pkg/errors"
)

func TestBuildAssetQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		query, args := buildAssetQuery(domain.AssetFilter{})

		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "ORDER BY created_at DESC, id DESC LIMIT $1")
		require.Len(t, args, 1)
		assert.Equal(t, DefaultAssetLimit, args[0])
	})

	t.Run("all filters", func(t *testing.T) {
		query, args := buildAssetQuery(domain.AssetFilter{
			Statuses:    []string{"operativo"},
			Substations: []string{"Alameda"},
			Companies:   []string{"Enel"},
			Limit:       10,
		})

		assert.Contains(t, query, "tag_estado = ANY($1)")
		assert.Contains(t, query, "nombre_subestacion = ANY($2)")
		assert.Contains(t, query, "empresa = ANY($3)")
		assert.Contains(t, query, "LIMIT $4")
		require.Len(t, args, 4)
		assert.Equal(t, 10, args[3])
	})

	t.Run("only companies", func(t *testing.T) {
		query, args := buildAssetQuery(domain.AssetFilter{Companies: []string{"Enel"}})

		assert.Contains(t, query, "WHERE empresa = ANY($1)")
		assert.Len(t, args, 2)
	})
}

func TestEffectiveLimit(t *testing.T) {
	assert.Equal(t, DefaultAssetLimit, effectiveLimit(0))
	assert.Equal(t, DefaultAssetLimit, effectiveLimit(-3))
	assert.Equal(t, 25, effectiveLimit(25))
	assert.Equal(t, MaxAssetLimit, effectiveLimit(MaxAssetLimit+1))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		database bool
	}{
		{"pgx server error", &pgconn.PgError{Code: "42P01", Message: `relation "assets" does not exist`}, true},
		{"lib/pq server error", &pq.Error{Code: "42703", Message: `column "latitud" does not exist`}, true},
		{"wrapped server error", fmt.Errorf("select: %w", &pgconn.PgError{Code: "57014"}), true},
		{"connection refused", stderrors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError(tt.err)
			require.Error(t, err)
			assert.Equal(t, tt.database, stderrors.Is(err, apperrors.ErrDatabaseError))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
