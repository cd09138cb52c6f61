package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/asset-map-service/internal/pkg/errors"
)

// SuccessResponse — конверт успешного ответа API
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

// ErrorResponse — конверт ошибки API
type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// Meta — размер выдачи; Limit и Offset заполняются только для постраничных ответов
type Meta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendCreated отвечает 201 на создание ресурса
func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{Data: data})
}

// SendError отдаёт AppError (в том числе обёрнутую) с её статусом.
// Всё остальное скрывается за INTERNAL_SERVER_ERROR.
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errors.ErrInternalServer
	}
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{Error: appErr})
}
