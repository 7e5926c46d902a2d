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

type PostHandler struct {
	posts      *services.PostService
	comments   *services.CommentService
	engagement *services.EngagementService
}

func NewPostHandler(posts *services.PostService, comments *services.CommentService, engagement *services.EngagementService) *PostHandler {
	return &PostHandler{posts: posts, comments: comments, engagement: engagement}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	post, err := h.posts.CreatePost(userID, req.Image, req.Content)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) Feed(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit > 100 {
		limit = 100
	}

	posts, total, err := h.posts.Feed(userID, limit, offset)
	if err != nil {
		return internalError(c, "Failed to load feed")
	}
	return c.JSON(fiber.Map{"posts": posts, "total": total})
}

func (h *PostHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	post, err := h.posts.GetPost(userID, postID)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to load post")
	}
	return c.JSON(post)
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	if err := h.posts.DeletePost(userID, postID); err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrNotPostOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return internalError(c, "Failed to delete post")
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

func (h *PostHandler) Hide(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	if err := h.posts.HidePost(userID, postID); err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrAlreadyHidden):
			return conflict(c, err.Error())
		}
		return internalError(c, "Failed to hide post")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Post hidden"})
}

func (h *PostHandler) Unhide(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	if err := h.posts.UnhidePost(userID, postID); err != nil {
		if errors.Is(err, services.ErrNotHidden) {
			return conflict(c, err.Error())
		}
		return internalError(c, "Failed to unhide post")
	}
	return c.JSON(fiber.Map{"message": "Post unhidden"})
}

func (h *PostHandler) React(c *fiber.Ctx) error {
	return react(c, h.engagement, services.PostSubject)
}

func (h *PostHandler) Like(c *fiber.Ctx) error {
	return toggleLike(c, h.engagement, services.PostSubject)
}

func (h *PostHandler) Reactions(c *fiber.Ctx) error {
	return reactionSummary(c, h.engagement, services.PostSubject)
}

func (h *PostHandler) AddComment(c *fiber.Ctx) error {
	return addComment(c, h.comments, services.PostSubject)
}

func (h *PostHandler) Comments(c *fiber.Ctx) error {
	return listComments(c, h.comments, services.PostSubject)
}
