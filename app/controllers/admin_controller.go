package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dewatanation/admin-panel/app/repository"
	"github.com/dewatanation/admin-panel/internal/pkg/auth"
	"github.com/dewatanation/admin-panel/internal/pkg/logger"
)

// AdminController serves the panel pages behind the admin login using repository pattern
type AdminController struct {
	repos *repository.Repositories
}

// NewAdminController creates a new admin controller with repository dependencies
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{
		repos: repos,
	}
}

// HandleGetcordList lists the saved in-game positions
func (ac *AdminController) HandleGetcordList(c *fiber.Ctx) error {
	cords, err := ac.repos.Getcord.List(c.UserContext())
	if err != nil {
		return storeFailure(c, "Failed to list getcord", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": cords})
}

// HandleGetcordDelete removes one saved position
func (ac *AdminController) HandleGetcordDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.JSON(fiber.Map{"success": false, "message": "ID tidak valid"})
	}

	if err := ac.repos.Getcord.Delete(c.UserContext(), uint(id)); err != nil {
		return storeFailure(c, "Failed to delete getcord", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleCheckUser reports whether a player name is registered
func (ac *AdminController) HandleCheckUser(c *fiber.Ctx) error {
	exists, err := ac.repos.Account.Exists(c.UserContext(), c.Params("username"))
	if err != nil {
		logger.Get().Error().Err(err).Str("path", c.Path()).Msg("Failed to check user")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"exists":  false,
			"message": auth.Message(auth.ErrStoreUnavailable),
		})
	}
	return c.JSON(fiber.Map{"exists": exists})
}

// HandleAdminLog returns the most recent admin commands, newest first
func (ac *AdminController) HandleAdminLog(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", repository.DefaultAdminLogLimit)
	entries, err := ac.repos.AdminLog.Recent(c.UserContext(), limit)
	if err != nil {
		return storeFailure(c, "Failed to load admin log", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": entries})
}
