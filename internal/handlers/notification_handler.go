package handlers

import (
	"errors"

	"github.com/elifkaracan/vloggy-backend/internal/middleware"
	"github.com/elifkaracan/vloggy-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	feed, err := h.notifications.List(userID)
	if err != nil {
		return internalError(c, "Failed to list notifications")
	}
	return c.JSON(feed)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid notification ID")
	}

	if err := h.notifications.MarkRead(userID, notificationID); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to mark notification read")
	}
	return c.JSON(fiber.Map{"message": "Notification marked read"})
}

// Reactors lists the distinct users who reacted to the caller's content.
func (h *NotificationHandler) Reactors(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	users, err := h.notifications.ReactedAudience(userID)
	if err != nil {
		return internalError(c, "Failed to list reacting users")
	}
	return c.JSON(fiber.Map{"users": users})
}

// Followers lists the users currently following the caller.
func (h *NotificationHandler) Followers(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	users, err := h.notifications.FollowerAudience(userID)
	if err != nil {
		return internalError(c, "Failed to list followers")
	}
	return c.JSON(fiber.Map{"users": users})
}
