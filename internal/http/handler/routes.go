package handler

import (
	"github.com/gofiber/fiber/v2"

	"cardapi/internal/config"
	"cardapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, cfg *config.AppConfig, cardSvc service.CardService, attSvc service.AttachmentService) {
	publicBase := cfg.PublicBaseURL

	// Service banner
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Cards API running",
			"data_file": cfg.Storage.CardsFile,
		})
	})

	// Minimal OpenAPI document listing the available paths
	app.Get("/openapi.json", OpenAPISpec())

	// Liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Cards
	app.Post("/cards", CreateCard(cardSvc))
	app.Get("/cards", ListCards(cardSvc, publicBase))
	app.Patch("/cards/:id", UpdateCard(cardSvc))

	// Items under a card
	app.Post("/cards/:id/items", AddItem(cardSvc))
	app.Get("/cards/:id/items", ListItems(cardSvc, publicBase))
	app.Patch("/cards/:id/items/:iid", UpdateItem(cardSvc))

	// Attachment lifecycle: stage, commit, or both in one step
	app.Post("/uploads", StageUpload(attSvc))
	app.Post("/attachments/commit", CommitAttachment(attSvc, publicBase))
	app.Post("/cards/:id/attachments", DirectUpload(attSvc, publicBase))
	app.Get("/cards/:id/attachments", ListCardAttachments(attSvc, publicBase))
	app.Get("/cards/:id/items/:iid/attachments", ListItemAttachments(attSvc, publicBase))

	// Committed attachment bytes, served straight from the files tree
	app.Static("/files", cfg.Storage.FilesDir)
}

// OpenAPISpec serves a minimal OpenAPI placeholder document.
func OpenAPISpec() fiber.Handler {
	spec := fiber.Map{
		"openapi": "3.0.0",
		"info":    fiber.Map{"title": "Cards API", "version": "1.0.0"},
		"paths": fiber.Map{
			"/cards":                           fiber.Map{"get": fiber.Map{}, "post": fiber.Map{}},
			"/cards/{card_id}":                 fiber.Map{"patch": fiber.Map{}},
			"/cards/{card_id}/items":           fiber.Map{"get": fiber.Map{}, "post": fiber.Map{}},
			"/cards/{card_id}/items/{item_id}": fiber.Map{"patch": fiber.Map{}},
			"/uploads":                         fiber.Map{"post": fiber.Map{}},
			"/attachments/commit":              fiber.Map{"post": fiber.Map{}},
			"/cards/{card_id}/attachments":     fiber.Map{"get": fiber.Map{}, "post": fiber.Map{}},
			"/cards/{card_id}/items/{item_id}/attachments": fiber.Map{"get": fiber.Map{}},
			"/files/{card_id}/{path}":                      fiber.Map{"get": fiber.Map{}},
		},
	}
	return func(c *fiber.Ctx) error {
		return c.JSON(spec)
	}
}
