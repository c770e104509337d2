package handlers

import (
	"errors"
	"net/url"

	"github.com/fajarshiddiqqq/roommate-interior-be/internal/requests"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/services"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	service *services.PortfolioService
	files   *storage.Files
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(service *services.PortfolioService, files *storage.Files) *PortfolioHandler {
	return &PortfolioHandler{service: service, files: files}
}

// sendServiceError maps domain errors onto the response envelope.
func sendServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrNotFound):
		return httpx.SendResponse(c, httpx.NotFound("Portfolio not found"))
	case errors.As(err, &validationErr):
		return httpx.SendResponse(c, httpx.BadRequest(validationErr.Message, err))
	case errors.Is(err, services.ErrTitleTaken),
		errors.Is(err, services.ErrSlugTaken),
		errors.Is(err, services.ErrMissingUpload):
		return httpx.SendResponse(c, httpx.BadRequest(err.Error(), err))
	case errors.Is(err, storage.ErrStoreUnavailable):
		return httpx.SendResponse(c, httpx.InternalServerError("Metadata store unavailable", err))
	default:
		return httpx.SendResponse(c, httpx.InternalServerError("Failed to process request", err))
	}
}

// ListPortfolios returns all portfolios, newest first. With ?preview=true
// only the three newest are returned.
func (h *PortfolioHandler) ListPortfolios(c *fiber.Ctx) error {
	preview := c.Query("preview") == "true"

	portfolios, err := h.service.List(preview)
	if err != nil {
		return sendServiceError(c, err)
	}

	return httpx.SendResponse(c, httpx.OK("Portfolios retrieved successfully", portfolios))
}

// PreviewPortfolios returns the reduced public projection: the three
// newest portfolios with featured images only.
func (h *PortfolioHandler) PreviewPortfolios(c *fiber.Ctx) error {
	previews, err := h.service.ListPreview()
	if err != nil {
		return sendServiceError(c, err)
	}

	return httpx.SendResponse(c, httpx.OK("Portfolios retrieved successfully", previews))
}

// GetPortfolio returns the full detail of a single portfolio by slug.
func (h *PortfolioHandler) GetPortfolio(c *fiber.Ctx) error {
	portfolio, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		return sendServiceError(c, err)
	}

	return httpx.SendResponse(c, httpx.OK("Portfolio retrieved successfully", portfolio))
}

// CreatePortfolio handles the multipart create request.
func (h *PortfolioHandler) CreatePortfolio(c *fiber.Ctx) error {
	var input requests.CreatePortfolioRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	// Image fields ride alongside the text fields; a non-multipart body
	// simply has none.
	form, err := c.MultipartForm()
	if err != nil {
		form = nil
	}

	portfolio, err := h.service.Create(input, form)
	if err != nil {
		return sendServiceError(c, err)
	}

	return httpx.SendResponse(c, httpx.Created("Portfolio created successfully", portfolio))
}

// UpdatePortfolio handles the multipart update request, identified by
// numeric id.
func (h *PortfolioHandler) UpdatePortfolio(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		response := httpx.BadRequest("Invalid portfolio ID", err)
		return httpx.SendResponse(c, response)
	}

	var input requests.UpdatePortfolioRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	form, err := c.MultipartForm()
	if err != nil {
		form = nil
	}

	portfolio, err := h.service.Update(id, input, form)
	if err != nil {
		return sendServiceError(c, err)
	}

	return httpx.SendResponse(c, httpx.OK("Portfolio updated successfully", portfolio))
}

// DeletePortfolio removes a portfolio and its stored files.
func (h *PortfolioHandler) DeletePortfolio(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		response := httpx.BadRequest("Invalid portfolio ID", err)
		return httpx.SendResponse(c, response)
	}

	if err := h.service.Delete(id); err != nil {
		return sendServiceError(c, err)
	}

	return httpx.SendResponse(c, httpx.OK("Portfolio deleted successfully", nil))
}

// DownloadFile serves a stored binary by filename. Route params arrive
// still percent-encoded, while the store holds the decoded name.
func (h *PortfolioHandler) DownloadFile(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" || !h.files.Exists(name) {
		response := httpx.NotFound("File not found")
		return httpx.SendResponse(c, response)
	}

	return c.SendFile(h.files.Path(name))
}
