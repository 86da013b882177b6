package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const internalServerError = "Internal Server Error"

// HealthResponse is the body returned by /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Status: "ok"})
}

// handleHome renders the empty form. It never calls the gateway.
func (s *Server) handleHome(c *fiber.Ctx) error {
	return s.render(c, "")
}

// handleTranslate runs the pipeline for a submitted form. The slang field
// is required; context is optional and only forwarded when the field is
// present in the submission.
func (s *Server) handleTranslate(c *fiber.Ctx) error {
	slang, ok := formField(c, "slang")
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "missing form field: slang")
	}

	var contextText *string
	if v, ok := formField(c, "context"); ok {
		contextText = &v
	}

	translation, err := s.translator.Translate(c.UserContext(), slang, contextText)
	if err != nil {
		s.logger.Error("translation request failed",
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).SendString(internalServerError)
	}

	return s.render(c, translation)
}

// render executes the home template with translation as its only value.
func (s *Server) render(c *fiber.Ctx, translation string) error {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, translation); err != nil {
		s.logger.Error("rendering home page", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString(internalServerError)
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// sendStatic serves a single file from the static directory.
func (s *Server) sendStatic(path string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendFile(path)
	}
}

// formField looks a field up in a urlencoded or multipart body and reports
// whether it was present at all.
func formField(c *fiber.Ctx, name string) (string, bool) {
	args := c.Request().PostArgs()
	if args.Has(name) {
		return string(args.Peek(name)), true
	}

	form, err := c.MultipartForm()
	if err != nil {
		return "", false
	}
	if values, ok := form.Value[name]; ok && len(values) > 0 {
		return values[0], true
	}
	return "", false
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
