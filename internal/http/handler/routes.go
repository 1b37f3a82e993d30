package handler

import (
	"github.com/gofiber/fiber/v2"

	"coopart/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when the ledger is not database-backed.
func RegisterRoutes(app *fiber.App, db Pinger, tiles service.TileService, canvas service.CanvasService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/tiles", UploadTile(tiles))
	app.Get("/draft", GetDraft(tiles))
	app.Post("/draft/gesture", ApplyGesture(tiles))
	app.Put("/draft/transform", SetTransform(tiles))
	app.Post("/draft/mint", MintDraft(tiles))

	app.Get("/canvas", GetCanvas(canvas))
	app.Get("/canvas/preview.png", GetPreview(canvas))
	app.Get("/layers", ListLayers(canvas))
	app.Get("/downvotes", GetDownvotes(canvas))
	app.Post("/downvotes", Downvote(canvas))
	app.Get("/greeting", GetGreeting(canvas))
	app.Put("/greeting", SetGreeting(canvas))
	app.Get("/notification", GetNotification(canvas))
	app.Delete("/notification", DismissNotification(canvas))
	app.Get("/content/:cid", GetContent(canvas))
}
