package catalog

import (
	"errors"
	"strconv"

	"catalog-sync/core/logger"
	"catalog-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHeader identifies the caller for bookmark routes.
const UserHeader = "X-User-Id"

// Handler handles HTTP requests for catalog browsing and bookmarks.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	offers := app.Group("/offers")
	offers.Get("/", h.HandleListOffers)
	offers.Get("/:id", h.HandleGetOffer)

	bookmarks := app.Group("/bookmarks")
	bookmarks.Get("/", h.HandleListBookmarks)
	bookmarks.Post("/:configurationId", h.HandleCreateBookmark)
	bookmarks.Delete("/:configurationId", h.HandleDeleteBookmark)
}

// HandleListOffers lists available offer configurations.
// @Summary List Offers
// @Description List configurations of available offers, filtered by category, memory and storage (GB). Repeat memory/storage to OR values.
// @Tags offers
// @Produce json
// @Param category query string false "Category (Desktops, Laptops)"
// @Param memory query []int false "Memory capacity in GB" collectionFormat(multi)
// @Param storage query []int false "Storage size in GB" collectionFormat(multi)
// @Success 200 {array} catalog.OfferItem
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /offers [get]
func (h *Handler) HandleListOffers(c *fiber.Ctx) error {
	filter := OfferFilter{
		Category: c.Query("category"),
		Memory:   utils.ToInt16List(queryValues(c, "memory")),
		Storage:  utils.ToInt16List(queryValues(c, "storage")),
	}

	items, err := h.service.ListOfferItems(c.UserContext(), filter)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("List offers failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

// HandleGetOffer returns a single offer configuration.
// @Summary Get Offer Item
// @Tags offers
// @Produce json
// @Param id path int true "Configuration ID"
// @Success 200 {object} catalog.OfferItem
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /offers/{id} [get]
func (h *Handler) HandleGetOffer(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	item, err := h.service.GetOfferItem(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "offer item not found"})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Get offer failed", zap.Uint("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(item)
}

// HandleListBookmarks lists the caller's bookmarks.
// @Summary List Bookmarks
// @Tags bookmarks
// @Produce json
// @Param X-User-Id header string true "User ID"
// @Param configurationId query int false "Only this configuration"
// @Success 200 {array} models.Bookmark
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /bookmarks [get]
func (h *Handler) HandleListBookmarks(c *fiber.Ctx) error {
	userID := c.Get(UserHeader)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing " + UserHeader})
	}

	var configurationID *uint
	if raw := c.Query("configurationId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid configurationId"})
		}
		configurationID = &id
	}

	bookmarks, err := h.service.ListBookmarks(c.UserContext(), userID, configurationID)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("List bookmarks failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(bookmarks)
}

// HandleCreateBookmark bookmarks a configuration for the caller.
// @Summary Create Bookmark
// @Tags bookmarks
// @Produce json
// @Param X-User-Id header string true "User ID"
// @Param configurationId path int true "Configuration ID"
// @Success 201 {object} models.Bookmark
// @Success 200 {object} models.Bookmark "Already bookmarked"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /bookmarks/{configurationId} [post]
func (h *Handler) HandleCreateBookmark(c *fiber.Ctx) error {
	userID := c.Get(UserHeader)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing " + UserHeader})
	}
	id, err := parseID(c.Params("configurationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid configurationId"})
	}

	bookmark, created, err := h.service.CreateBookmark(c.UserContext(), userID, id)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "configuration not found"})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Create bookmark failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(bookmark)
}

// HandleDeleteBookmark removes the caller's bookmark.
// @Summary Delete Bookmark
// @Tags bookmarks
// @Param X-User-Id header string true "User ID"
// @Param configurationId path int true "Configuration ID"
// @Success 204
// @Router /bookmarks/{configurationId} [delete]
func (h *Handler) HandleDeleteBookmark(c *fiber.Ctx) error {
	userID := c.Get(UserHeader)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing " + UserHeader})
	}
	id, err := parseID(c.Params("configurationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid configurationId"})
	}

	if err := h.service.DeleteBookmark(c.UserContext(), userID, id); err != nil {
		logger.WithRayID(h.logger, c).Error("Delete bookmark failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func queryValues(c *fiber.Ctx, key string) []string {
	var values []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		values = append(values, string(v))
	}
	return values
}
