package handlers

import (
	"daswos/internal/repositories/cache"
	"daswos/internal/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db    *gorm.DB
	cache *cache.WalletCache
}

func NewHealthHandler(db *gorm.DB, walletCache *cache.WalletCache) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: walletCache,
	}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := fiber.Map{
		"database": "ok",
		"cache":    "ok",
	}
	healthy := true

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c.Context()) != nil {
		status["database"] = "unavailable"
		healthy = false
	}

	if err := h.cache.HealthCheck(c.Context()); err != nil {
		status["cache"] = "unavailable"
		healthy = false
	}

	if !healthy {
		return utils.Respond(c, fiber.StatusServiceUnavailable, status)
	}
	return utils.Success(c, status)
}
