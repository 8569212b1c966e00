package controllers

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dewatanation/admin-panel/internal/pkg/cache"
	"github.com/dewatanation/admin-panel/internal/pkg/database"
	"github.com/dewatanation/admin-panel/internal/pkg/logger"
	"github.com/dewatanation/admin-panel/internal/pkg/usercontext"
)

// DatabasePool is the part of *database.Pool the panel drives directly.
type DatabasePool interface {
	Ping(ctx context.Context) error
	Reconnect(ctx context.Context, override database.Settings) error
}

// DatabaseController reports and restores the game database connection
type DatabaseController struct {
	pool DatabasePool
}

func NewDatabaseController(pool DatabasePool) *DatabaseController {
	return &DatabaseController{pool: pool}
}

// HandleStatus pings the database, connecting first when there is no handle.
func (dc *DatabaseController) HandleStatus(c *fiber.Ctx) error {
	err := dc.pool.Ping(c.UserContext())
	if err != nil {
		logger.Get().Warn().Err(err).Msg("database status check failed")
	}
	return c.JSON(fiber.Map{"connected": err == nil})
}

type connectRequest struct {
	Host     string      `json:"host" form:"host"`
	Port     json.Number `json:"port" form:"port"`
	User     string      `json:"user" form:"user"`
	Password string      `json:"password" form:"password"`
	Database string      `json:"database" form:"database"`
}

func (r connectRequest) settings() database.Settings {
	s := database.Settings{
		Host:     r.Host,
		User:     r.User,
		Password: r.Password,
		Name:     r.Database,
	}
	// A port that is not a number keeps the configured one.
	if p, err := strconv.Atoi(r.Port.String()); err == nil && p > 0 {
		s.Port = strconv.Itoa(p)
	}
	return s
}

// HandleConnect reconnects the database. Connection settings from the request
// are only honored for an authenticated admin; everyone else reconnects with
// the configured settings.
func (dc *DatabaseController) HandleConnect(c *fiber.Ctx) error {
	var req connectRequest
	_ = c.BodyParser(&req)

	override := req.settings()
	if override != (database.Settings{}) && !usercontext.IsAuthenticated(c) {
		logger.Get().Warn().Str("ip", GetClientIP(c)).Msg("ignoring connection settings from anonymous client")
		override = database.Settings{}
	}

	if err := dc.pool.Reconnect(c.UserContext(), override); err != nil {
		logger.Get().Error().Err(err).Msg("database reconnect failed")
		return c.JSON(fiber.Map{"success": false, "message": "Gagal terhubung ke database"})
	}

	logger.Get().Info().Str("username", usercontext.GetUsername(c)).Msg("database reconnected")
	return c.JSON(fiber.Map{"success": true, "message": "Database connected!"})
}

// HandleHealth is the liveness check for the database and the session cache.
func (dc *DatabaseController) HandleHealth(c *fiber.Ctx) error {
	ctx := c.UserContext()
	dbErr := dc.pool.Ping(ctx)
	cacheErr := cache.Ping(ctx)

	status := fiber.StatusOK
	if dbErr != nil || cacheErr != nil {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"database": dbErr == nil,
		"cache":    cacheErr == nil,
	})
}
