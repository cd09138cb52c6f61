package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/asset-map-service/internal/pkg/utils"
)

// SessionCounter отдаёт число живых сессий карт
type SessionCounter interface {
	Count() int
}

// HealthHandler - проверка живости сервиса
type HealthHandler struct {
	sessions SessionCounter
	source   string
	started  time.Time
}

// NewHealthHandler - создание нового HealthHandler
func NewHealthHandler(sessions SessionCounter, source string) *HealthHandler {
	return &HealthHandler{
		sessions: sessions,
		source:   source,
		started:  time.Now(),
	}
}

// HealthResponse - ответ проверки живости
type HealthResponse struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Uptime   string    `json:"uptime"`
	Source   string    `json:"source"`
	Sessions int       `json:"sessions"`
}

// Health godoc
// @Summary Проверка живости
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=handler.HealthResponse}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return utils.SendSuccess(c, HealthResponse{
		Status:   "healthy",
		Time:     time.Now(),
		Uptime:   time.Since(h.started).Truncate(time.Second).String(),
		Source:   h.source,
		Sessions: h.sessions.Count(),
	}, nil)
}
