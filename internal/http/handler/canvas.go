package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"coopart/internal/service"
	"coopart/internal/session"
)

// GetCanvas godoc
// @Summary Canvas scene
// @Description Committed tiles plus the caller's editable draft.
// @Tags canvas
// @Produce json
// @Success 200 {object} render.Scene
// @Failure 502 {object} errorPayload
// @Router /canvas [get]
func GetCanvas(svc service.CanvasService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		scene, err := svc.Scene(ctx, session.FromContext(ctx))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(scene)
	}
}

// GetPreview godoc
// @Summary Rasterized canvas
// @Tags canvas
// @Produce png
// @Success 200 {file} binary
// @Failure 502 {object} errorPayload
// @Router /canvas/preview.png [get]
func GetPreview(svc service.CanvasService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		var buf bytes.Buffer
		if err := svc.Preview(ctx, session.FromContext(ctx), &buf); err != nil {
			return writeServiceError(c, err)
		}
		c.Type("png")
		return c.Send(buf.Bytes())
	}
}

// ListLayers godoc
// @Summary Minted layers
// @Tags canvas
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} errorPayload
// @Router /layers [get]
func ListLayers(svc service.CanvasService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		layers, err := svc.Layers(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": layers, "total": len(layers)})
	}
}

// GetDownvotes godoc
// @Summary Canvas downvote counter
// @Tags canvas
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 502 {object} errorPayload
// @Router /downvotes [get]
func GetDownvotes(svc service.CanvasService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.Downvotes(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"downvotes": n})
	}
}

// Downvote godoc
// @Summary Downvote the canvas
// @Tags canvas
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 502 {object} errorPayload
// @Security BearerAuth
// @Router /downvotes [post]
func Downvote(svc service.CanvasService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		n, err := svc.Downvote(ctx, session.FromContext(ctx))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"downvotes": n})
	}
}

type greetingBody struct {
	Message string `json:"message"`
}

// GetGreeting godoc
// @Summary Greeting for an account
// @Tags greeting
// @Produce json
// @Param account_id query string false "Account (defaults to the caller)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Router /greeting [get]
func GetGreeting(svc service.CanvasService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		msg, err := svc.Greeting(ctx, session.FromContext(ctx), c.Query("account_id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": msg})
	}
}

// SetGreeting godoc
// @Summary Change the caller's greeting
// @Tags greeting
// @Accept json
// @Produce json
// @Param body body greetingBody true "New greeting"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Security BearerAuth
// @Router /greeting [put]
func SetGreeting(svc service.CanvasService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body greetingBody
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid greeting")
		}
		ctx := c.UserContext()
		msg, err := svc.SetGreeting(ctx, session.FromContext(ctx), body.Message)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": msg})
	}
}

// GetNotification godoc
// @Summary Notification state
// @Tags canvas
// @Produce json
// @Success 200 {object} notify.Status
// @Router /notification [get]
func GetNotification(svc service.CanvasService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		return c.JSON(svc.Notification(ctx, session.FromContext(ctx)))
	}
}

// DismissNotification godoc
// @Summary Hide the notification
// @Tags canvas
// @Produce json
// @Success 200 {object} notify.Status
// @Failure 401 {object} errorPayload
// @Security BearerAuth
// @Router /notification [delete]
func DismissNotification(svc service.CanvasService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		st, err := svc.DismissNotification(ctx, session.FromContext(ctx))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(st)
	}
}

// GetContent godoc
// @Summary Download stored content
// @Description Redirects to a short-lived URL for a content id.
// @Tags canvas
// @Param cid path string true "Content id"
// @Success 302
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /content/{cid} [get]
func GetContent(svc service.CanvasService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.ContentLink(c.UserContext(), c.Params("cid"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Redirect(u, fiber.StatusFound)
	}
}
