package handlers

import (
	"errors"
	"strconv"

	"github.com/elifkaracan/vloggy-backend/internal/dto"
	"github.com/elifkaracan/vloggy-backend/internal/middleware"
	"github.com/elifkaracan/vloggy-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type VideoHandler struct {
	videos     *services.VideoService
	comments   *services.CommentService
	engagement *services.EngagementService
}

func NewVideoHandler(videos *services.VideoService, comments *services.CommentService, engagement *services.EngagementService) *VideoHandler {
	return &VideoHandler{videos: videos, comments: comments, engagement: engagement}
}

func (h *VideoHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	video, err := h.videos.CreateVideo(userID, &req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}

func (h *VideoHandler) Feed(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit > 100 {
		limit = 100
	}

	videos, total, err := h.videos.Feed(userID, limit, offset)
	if err != nil {
		return internalError(c, "Failed to load videos")
	}
	return c.JSON(fiber.Map{"videos": videos, "total": total})
}

func (h *VideoHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid video ID")
	}

	video, err := h.videos.GetVideo(userID, videoID)
	if err != nil {
		if errors.Is(err, services.ErrVideoNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to load video")
	}
	return c.JSON(video)
}

func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid video ID")
	}

	if err := h.videos.DeleteVideo(userID, videoID); err != nil {
		switch {
		case errors.Is(err, services.ErrVideoNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrNotVideoOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return internalError(c, "Failed to delete video")
	}
	return c.JSON(fiber.Map{"message": "Video deleted"})
}

func (h *VideoHandler) React(c *fiber.Ctx) error {
	return react(c, h.engagement, services.VideoSubject)
}

func (h *VideoHandler) Like(c *fiber.Ctx) error {
	return toggleLike(c, h.engagement, services.VideoSubject)
}

func (h *VideoHandler) Reactions(c *fiber.Ctx) error {
	return reactionSummary(c, h.engagement, services.VideoSubject)
}

func (h *VideoHandler) AddComment(c *fiber.Ctx) error {
	return addComment(c, h.comments, services.VideoSubject)
}

func (h *VideoHandler) Comments(c *fiber.Ctx) error {
	return listComments(c, h.comments, services.VideoSubject)
}
