package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/domain/repository"
	"github.com/asset-map-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewAssetRepositoryForTest creates an asset repository with test database and logger
func NewAssetRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AssetRepository {
	return postgres.NewAssetRepository(NewDBForTest(db, logger))
}
