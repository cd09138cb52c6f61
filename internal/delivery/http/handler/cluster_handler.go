package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/pkg/errors"
	"github.com/asset-map-service/internal/pkg/utils"
	"github.com/asset-map-service/internal/pkg/validator"
	"github.com/asset-map-service/internal/usecase"
	"github.com/asset-map-service/internal/usecase/dto"
)

// ClusterHandler - обработчик запросов к индексу кластеров
type ClusterHandler struct {
	clusterUC *usecase.ClusterUseCase
	logger    *zap.Logger
}

// NewClusterHandler - создание нового ClusterHandler
func NewClusterHandler(clusterUC *usecase.ClusterUseCase, logger *zap.Logger) *ClusterHandler {
	return &ClusterHandler{
		clusterUC: clusterUC,
		logger:    logger,
	}
}

// GetClusters godoc
// @Summary Кадр кластеров для видимой области
// @Description Кластеры и одиночные активы внутри bbox на заданном зуме. Кластеры несут point_count и point_count_abbreviated.
// @Tags Clusters
// @Produce json
// @Param west query number true "Западная долгота"
// @Param south query number true "Южная широта"
// @Param east query number true "Восточная долгота"
// @Param north query number true "Северная широта"
// @Param zoom query number true "Зум карты"
// @Param status query []string false "Статусы (tag_estado)" collectionFormat(csv)
// @Success 200 {object} utils.SuccessResponse{data=geojson.FeatureCollection}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/clusters [get]
func (h *ClusterHandler) GetClusters(c *fiber.Ctx) error {
	var req dto.ClustersRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	fc, err := h.clusterUC.GetClusters(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fc, &utils.Meta{Total: len(fc.Features)})
}

// GetExpansionZoom godoc
// @Summary Зум раскрытия кластера
// @Description Минимальный зум, на котором кластер распадается, и целевой зум перелёта камеры
// @Tags Clusters
// @Produce json
// @Param id path string true "Идентификатор кластера"
// @Success 200 {object} utils.SuccessResponse{data=dto.ExpansionZoomResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/clusters/{id}/expansion-zoom [get]
func (h *ClusterHandler) GetExpansionZoom(c *fiber.Ctx) error {
	req, err := parseClusterRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.clusterUC.GetExpansionZoom(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// GetChildren godoc
// @Summary Дочерние элементы кластера
// @Tags Clusters
// @Produce json
// @Param id path string true "Идентификатор кластера"
// @Success 200 {object} utils.SuccessResponse{data=geojson.FeatureCollection}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/clusters/{id}/children [get]
func (h *ClusterHandler) GetChildren(c *fiber.Ctx) error {
	req, err := parseClusterRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	fc, err := h.clusterUC.GetChildren(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fc, &utils.Meta{Total: len(fc.Features)})
}

// GetLeaves godoc
// @Summary Исходные активы кластера
// @Tags Clusters
// @Produce json
// @Param id path string true "Идентификатор кластера"
// @Param leaves_limit query int false "Размер страницы" default(10)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=dto.LeavesResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/clusters/{id}/leaves [get]
func (h *ClusterHandler) GetLeaves(c *fiber.Ctx) error {
	var req dto.ClusterLeavesRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	req.ClusterID = c.Params("id")
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.clusterUC.GetLeaves(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total, Limit: resp.Limit, Offset: resp.Offset})
}

func parseClusterRequest(c *fiber.Ctx) (dto.ClusterRequest, error) {
	var req dto.ClusterRequest
	if err := c.QueryParser(&req); err != nil {
		return req, errors.ErrInvalidRequest
	}
	req.ClusterID = c.Params("id")
	if err := validator.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}
