package handlers

import (
	"errors"

	"github.com/elifkaracan/vloggy-backend/internal/dto"
	"github.com/elifkaracan/vloggy-backend/internal/middleware"
	"github.com/elifkaracan/vloggy-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Shared engagement endpoints, parameterized by the subject constructor so
// the post and video handlers stay symmetric.

func react(c *fiber.Ctx, engagement *services.EngagementService, subjectOf func(uuid.UUID) services.Subject) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid content ID")
	}

	var req dto.ReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := engagement.SetReaction(subjectOf(subjectID), userID, req.Kind)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReaction):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrContentNotFound):
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to set reaction")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func toggleLike(c *fiber.Ctx, engagement *services.EngagementService, subjectOf func(uuid.UUID) services.Subject) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid content ID")
	}

	liked, err := engagement.ToggleLike(subjectOf(subjectID), userID)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to toggle like")
	}

	action := "removed"
	if liked {
		action = "added"
	}
	return c.JSON(dto.LikeResult{Liked: liked, Action: action})
}

func reactionSummary(c *fiber.Ctx, engagement *services.EngagementService, subjectOf func(uuid.UUID) services.Subject) error {
	if _, err := middleware.CurrentUserID(c); err != nil {
		return unauthorized(c)
	}

	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid content ID")
	}
	subject := subjectOf(subjectID)

	summary, err := engagement.Summary(subject, 3)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to load reactions")
	}

	reactors, err := engagement.ReactionList(subject)
	if err != nil {
		return internalError(c, "Failed to load reactions")
	}

	return c.JSON(fiber.Map{"summary": summary, "reactors": reactors})
}

func addComment(c *fiber.Ctx, comments *services.CommentService, subjectOf func(uuid.UUID) services.Subject) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid content ID")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	comment, err := comments.AddComment(subjectOf(subjectID), userID, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return notFound(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func listComments(c *fiber.Ctx, comments *services.CommentService, subjectOf func(uuid.UUID) services.Subject) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid content ID")
	}

	items, err := comments.ListComments(userID, subjectOf(subjectID))
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to list comments")
	}
	return c.JSON(fiber.Map{"comments": items})
}
