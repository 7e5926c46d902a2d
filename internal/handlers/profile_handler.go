package handlers

import (
	"errors"

	"github.com/elifkaracan/vloggy-backend/internal/middleware"
	"github.com/elifkaracan/vloggy-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	if _, err := middleware.CurrentUserID(c); err != nil {
		return unauthorized(c)
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	profile, err := h.profiles.Profile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to load profile")
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) Followers(c *fiber.Ctx) error {
	viewerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	users, err := h.profiles.Followers(viewerID, userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to list followers")
	}
	return c.JSON(fiber.Map{"users": users})
}

func (h *ProfileHandler) Following(c *fiber.Ctx) error {
	viewerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	users, err := h.profiles.Following(viewerID, userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to list following")
	}
	return c.JSON(fiber.Map{"users": users})
}
