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

// ViewportHandler — видимый набор активов и разрешение кликов по близким активам
type ViewportHandler struct {
	clusterUC *usecase.ClusterUseCase
	logger    *zap.Logger
}

// NewViewportHandler создаёт новый ViewportHandler
func NewViewportHandler(clusterUC *usecase.ClusterUseCase, logger *zap.Logger) *ViewportHandler {
	return &ViewportHandler{
		clusterUC: clusterUC,
		logger:    logger,
	}
}

// GetVisible godoc
// @Summary Активы в видимой области
// @Description Видимый набор для bbox. Границы включительны, пустой набор возвращается с empty=true.
// @Tags Viewport
// @Produce json
// @Param west query number true "Западная долгота"
// @Param south query number true "Южная широта"
// @Param east query number true "Восточная долгота"
// @Param north query number true "Северная широта"
// @Param zoom query number false "Зум; учитывается в режиме rendered"
// @Success 200 {object} utils.SuccessResponse{data=dto.VisibleResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/viewport/assets [get]
func (h *ViewportHandler) GetVisible(c *fiber.Ctx) error {
	var req dto.ViewportRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.clusterUC.GetVisible(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// ResolveProximity godoc
// @Summary Разрешение клика по близким активам
// @Description Возвращает активы в пороге от точки клика (ближайшие первыми) и содержимое попапа
// @Tags Viewport
// @Accept json
// @Produce json
// @Param request body dto.ProximityRequest true "Точка клика"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProximityResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/proximity/resolve [post]
func (h *ViewportHandler) ResolveProximity(c *fiber.Ctx) error {
	var req dto.ProximityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.clusterUC.ResolveProximity(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}
