package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"coopart/internal/model"
	"coopart/internal/service"
	"coopart/internal/session"
	"coopart/internal/transform"
)

// MaxUploadBytes caps the size of an uploaded tile image.
const MaxUploadBytes = 10 << 20

// IdempotencyKeyHeader makes mint retries safe.
const IdempotencyKeyHeader = "Idempotency-Key"

// UploadTile godoc
// @Summary Upload a tile image
// @Description Stores the image by content and makes it the caller's draft tile.
// @Tags tiles
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Tile image"
// @Success 201 {object} model.Tile
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Security BearerAuth
// @Router /tiles [post]
func UploadTile(svc service.TileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		if fh.Size > MaxUploadBytes {
			return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file is too large")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}
		if len(data) == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is empty")
		}

		ctx := c.UserContext()
		tile, err := svc.Upload(ctx, session.FromContext(ctx), data)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(tile)
	}
}

// GetDraft godoc
// @Summary Current draft tile
// @Tags tiles
// @Produce json
// @Success 200 {object} model.Tile
// @Failure 401 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Security BearerAuth
// @Router /draft [get]
func GetDraft(svc service.TileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		tile, err := svc.Draft(ctx, session.FromContext(ctx))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(tile)
	}
}

// ApplyGesture godoc
// @Summary Apply a move, resize or rotate gesture to the draft
// @Tags tiles
// @Accept json
// @Produce json
// @Param gesture body transform.Gesture true "Relative change"
// @Success 200 {object} model.Tile
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Security BearerAuth
// @Router /draft/gesture [post]
func ApplyGesture(svc service.TileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var g transform.Gesture
		if err := c.BodyParser(&g); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid gesture")
		}
		ctx := c.UserContext()
		tile, err := svc.ApplyGesture(ctx, session.FromContext(ctx), g)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(tile)
	}
}

// SetTransform godoc
// @Summary Replace the draft geometry
// @Tags tiles
// @Accept json
// @Produce json
// @Param attrs body model.TransformAttrs true "Absolute geometry"
// @Success 200 {object} model.Tile
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Security BearerAuth
// @Router /draft/transform [put]
func SetTransform(svc service.TileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var a model.TransformAttrs
		if err := c.BodyParser(&a); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid transform")
		}
		ctx := c.UserContext()
		tile, err := svc.SetTransform(ctx, session.FromContext(ctx), a)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(tile)
	}
}

// MintDraft godoc
// @Summary Mint the draft tile
// @Description Publishes the draft's metadata and records it on the ledger.
// @Tags tiles
// @Produce json
// @Param Idempotency-Key header string false "Retry key"
// @Success 201 {object} pipeline.MintResult
// @Success 200 {object} pipeline.MintResult "replayed"
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Security BearerAuth
// @Router /draft/mint [post]
func MintDraft(svc service.TileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		res, err := svc.Mint(ctx, session.FromContext(ctx), c.Get(IdempotencyKeyHeader))
		if err != nil {
			return writeServiceError(c, err)
		}
		status := fiber.StatusCreated
		if res.Replayed {
			status = fiber.StatusOK
		}
		return c.Status(status).JSON(res)
	}
}
