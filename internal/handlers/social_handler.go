package handlers

import (
	"errors"

	"github.com/elifkaracan/vloggy-backend/internal/dto"
	"github.com/elifkaracan/vloggy-backend/internal/middleware"
	"github.com/elifkaracan/vloggy-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SocialHandler fronts the block and follow registries.
type SocialHandler struct {
	blocks  *services.BlockService
	follows *services.FollowService
}

func NewSocialHandler(blocks *services.BlockService, follows *services.FollowService) *SocialHandler {
	return &SocialHandler{blocks: blocks, follows: follows}
}

func (h *SocialHandler) BlockUser(c *fiber.Ctx) error {
	blockerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.BlockUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.blocks.CreateBlock(blockerID, req.BlockedID); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfBlock):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrAlreadyBlocked):
			return conflict(c, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to block user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User blocked successfully"})
}

func (h *SocialHandler) UnblockUser(c *fiber.Ctx) error {
	blockerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	blockedID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	if err := h.blocks.RemoveBlock(blockerID, blockedID); err != nil {
		if errors.Is(err, services.ErrBlockNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to unblock user")
	}

	return c.JSON(fiber.Map{"message": "User unblocked successfully"})
}

func (h *SocialHandler) ListBlocked(c *fiber.Ctx) error {
	blockerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	blocks, err := h.blocks.ListBlocked(blockerID)
	if err != nil {
		return internalError(c, "Failed to list blocks")
	}

	items := make([]dto.UserSummary, len(blocks))
	for i, b := range blocks {
		items[i] = dto.UserSummary{
			ID:       b.Blocked.ID,
			Username: b.Blocked.Username,
			Avatar:   b.Blocked.Avatar,
		}
	}
	return c.JSON(fiber.Map{"blocked": items})
}

func (h *SocialHandler) FollowUser(c *fiber.Ctx) error {
	followerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.FollowRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.follows.CreateFollow(followerID, req.FollowingID); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfFollow):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrAlreadyFollowing):
			return conflict(c, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to follow user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Now following"})
}

func (h *SocialHandler) UnfollowUser(c *fiber.Ctx) error {
	followerID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	followingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	if err := h.follows.RemoveFollow(followerID, followingID); err != nil {
		if errors.Is(err, services.ErrNotFollowing) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to unfollow user")
	}

	return c.JSON(fiber.Map{"message": "Unfollowed"})
}
