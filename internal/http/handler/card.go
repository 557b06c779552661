package handler

import (
	"github.com/gofiber/fiber/v2"

	"cardapi/internal/service"
)

// CreateCard handles POST /cards. An absent body creates a card with all
// defaults, matching the historical behavior.
func CreateCard(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CardInput
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
			}
		}

		card, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "created", "card": card})
	}
}

// UpdateCard handles PATCH /cards/:id. Only allowed fields are applied;
// the response reports which ones were.
func UpdateCard(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields := map[string]any{}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&fields); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
			}
		}

		res, err := svc.Update(c.UserContext(), c.Params("id"), fields)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListCards handles GET /cards with substring filters. Embedded
// attachment urls are re-derived before the response goes out; the
// persisted url is never returned as stored.
func ListCards(svc service.CardService, publicBase string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := service.CardFilter{
			BusinessPartner: c.Query("business_partner"),
			Description:     c.Query("description"),
			Type:            c.Query("type"),
			Date:            c.Query("date"),
		}
		cards, err := svc.List(c.UserContext(), f)
		if err != nil {
			return writeServiceError(c, err)
		}

		base := baseURL(c, publicBase)
		for i := range cards {
			cards[i].Attachments = service.NormalizeAll(base, cards[i].CardID, cards[i].Attachments)
			for j := range cards[i].Items {
				cards[i].Items[j].Attachments = service.NormalizeAll(base, cards[i].CardID, cards[i].Items[j].Attachments)
			}
		}
		return c.JSON(cards)
	}
}

// AddItem handles POST /cards/:id/items.
func AddItem(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ItemInput
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
			}
		}

		item, err := svc.AddItem(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "created", "item": item})
	}
}

// ListItems handles GET /cards/:id/items. Embedded attachment urls are
// re-derived the same way the attachment listings do it.
func ListItems(svc service.CardService, publicBase string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListItems(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}

		base := baseURL(c, publicBase)
		for i := range items {
			owner := items[i].CardID
			if owner == "" {
				owner = c.Params("id")
			}
			items[i].Attachments = service.NormalizeAll(base, owner, items[i].Attachments)
		}
		return c.JSON(items)
	}
}

// UpdateItem handles PATCH /cards/:id/items/:iid.
func UpdateItem(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields := map[string]any{}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&fields); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
			}
		}

		res, err := svc.UpdateItem(c.UserContext(), c.Params("id"), c.Params("iid"), fields)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
