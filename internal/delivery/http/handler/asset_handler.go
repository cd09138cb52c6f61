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

// AssetHandler - обработчик выгрузки активов
type AssetHandler struct {
	assetUC *usecase.AssetUseCase
	logger  *zap.Logger
}

// NewAssetHandler - создание нового AssetHandler
func NewAssetHandler(assetUC *usecase.AssetUseCase, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{
		assetUC: assetUC,
		logger:  logger,
	}
}

// GetGeoJSON godoc
// @Summary Все активы фильтра в виде GeoJSON
// @Description Возвращает точки активов с валидными координатами. Записи без координат пропускаются.
// @Tags Assets
// @Produce json
// @Param status query []string false "Статусы (tag_estado)" collectionFormat(csv)
// @Param substation query []string false "Подстанции" collectionFormat(csv)
// @Param company query []string false "Компании" collectionFormat(csv)
// @Param limit query int false "Максимум записей из источника"
// @Success 200 {object} utils.SuccessResponse{data=geojson.FeatureCollection}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/assets/geojson [get]
func (h *AssetHandler) GetGeoJSON(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	fc, err := h.assetUC.GetGeoJSON(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fc, &utils.Meta{Total: len(fc.Features)})
}

// GetGroups godoc
// @Summary Группы активов
// @Description Группирует активы по подстанции или по расстоянию между соседями
// @Tags Assets
// @Produce json
// @Param mode query string false "substation | distance" default(substation)
// @Param distance_m query number false "Порог расстояния для режима distance, метры"
// @Param status query []string false "Статусы (tag_estado)" collectionFormat(csv)
// @Param substation query []string false "Подстанции" collectionFormat(csv)
// @Param company query []string false "Компании" collectionFormat(csv)
// @Success 200 {object} utils.SuccessResponse{data=geojson.FeatureCollection}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/assets/groups [get]
func (h *AssetHandler) GetGroups(c *fiber.Ctx) error {
	var req dto.GroupsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	fc, err := h.assetUC.GetGroups(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fc, &utils.Meta{Total: len(fc.Features)})
}
