package handler

import (
	"github.com/gofiber/fiber/v2"

	"cardapi/internal/service"
)

// baseURL returns the origin used when normalizing attachment URLs: the
// configured public base URL when set, otherwise the request's own origin.
func baseURL(c *fiber.Ctx, publicBase string) string {
	if publicBase != "" {
		return publicBase
	}
	return c.BaseURL()
}

// StageUpload handles POST /uploads (multipart, field "file"). The file is
// held in the staging area under the returned token until committed.
func StageUpload(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		if fh.Filename == "" || fh.Size == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is missing or empty")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		staged, err := svc.Stage(c.UserContext(), f, fh.Filename, fh.Header.Get("Content-Type"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(staged)
	}
}

// CommitAttachment handles POST /attachments/commit. The staged file named
// by the token becomes a permanent attachment of the card (or item).
func CommitAttachment(svc service.AttachmentService, publicBase string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CommitInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}
		if in.Token == "" || in.CardID == "" {
			return writeError(c, fiber.StatusBadRequest, "MISSING_PARAMS", "token and card_id are required")
		}

		att, err := svc.Commit(c.UserContext(), in, baseURL(c, publicBase))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(att)
	}
}

// DirectUpload handles POST /cards/:id/attachments (multipart, optional
// item_id form field): upload and commit in a single request.
func DirectUpload(svc service.AttachmentService, publicBase string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		att, err := svc.UploadDirect(
			c.UserContext(),
			c.Params("id"),
			c.FormValue("item_id"),
			f,
			fh.Filename,
			fh.Header.Get("Content-Type"),
			baseURL(c, publicBase),
		)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(att)
	}
}

// ListCardAttachments handles GET /cards/:id/attachments. URLs are
// normalized on every read; a missing card yields an empty array.
func ListCardAttachments(svc service.AttachmentService, publicBase string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		atts, err := svc.ListCardAttachments(c.UserContext(), c.Params("id"), baseURL(c, publicBase))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(atts)
	}
}

// ListItemAttachments handles GET /cards/:id/items/:iid/attachments.
func ListItemAttachments(svc service.AttachmentService, publicBase string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		atts, err := svc.ListItemAttachments(c.UserContext(), c.Params("id"), c.Params("iid"), baseURL(c, publicBase))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(atts)
	}
}
