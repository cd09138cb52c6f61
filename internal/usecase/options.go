package usecase

import (
	"fmt"

	"github.com/asset-map-service/internal/cluster"
	"github.com/asset-map-service/internal/config"
	"github.com/asset-map-service/internal/interaction"
	"github.com/asset-map-service/internal/viewport"
)

// ClusterOptions собирает параметры индекса из конфигурации
func ClusterOptions(cfg config.ClusterConfig) (cluster.Options, error) {
	opts := cluster.Options{
		MinZoom:   cfg.MinZoom,
		MaxZoom:   cfg.MaxZoom,
		Radius:    cfg.Radius,
		Extent:    cfg.Extent,
		NodeSize:  cfg.NodeSize,
		MinPoints: cfg.MinPoints,
	}
	if err := opts.Validate(); err != nil {
		return cluster.Options{}, fmt.Errorf("invalid cluster config: %w", err)
	}
	return opts, nil
}

// InteractionOptions собирает параметры контроллера карты из конфигурации
func InteractionOptions(cfg *config.Config) (interaction.Options, error) {
	clusterOpts, err := ClusterOptions(cfg.Cluster)
	if err != nil {
		return interaction.Options{}, err
	}

	mode, err := viewport.ParseMode(cfg.Map.VisibilityMode)
	if err != nil {
		return interaction.Options{}, err
	}

	opts := interaction.DefaultOptions()
	opts.Cluster = clusterOpts
	opts.MapMaxZoom = cfg.Map.MaxZoom
	opts.ProximityThresholdMeters = cfg.Map.ProximityThresholdMeters
	opts.HitRadiusPx = cfg.Map.HitRadiusPx
	opts.PopupPanRatio = cfg.Map.PopupPanRatio
	opts.VisibilityMode = mode

	return opts, nil
}
