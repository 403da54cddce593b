package handler

import (
	"net/http"

	"event-booking-api/internal/model"
	"event-booking-api/internal/service"
	apperrors "event-booking-api/pkg/app_errors"
	"event-booking-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventLocationHandler struct {
	service service.EventLocationService
}

func NewEventLocationHandler(service service.EventLocationService) *EventLocationHandler {
	return &EventLocationHandler{service: service}
}

func (h *EventLocationHandler) RegisterRoutes(r gin.IRouter) {
	router := r.Group("/event-locations")
	{
		router.GET("", h.List)
		router.GET("/all", h.ListAll)
		router.GET("/:id", h.GetByID)
		router.GET("/:id/available", h.IsAvailable)
		router.POST("", h.Create)
		router.PUT("/:id", h.Update)
		router.DELETE("/:id", h.Delete)
		router.PUT("/:id/activate", h.Activate)
		router.PUT("/:id/deactivate", h.Deactivate)
		router.PUT("/:id/restore", h.Restore)
	}

	// Nested listings hang off the parent resources.
	r.GET("/events/:id/event-locations", h.ListByEvent)
	r.GET("/events/:id/event-locations/active", h.ListActiveByEvent)
	r.GET("/locations/:id/event-locations", h.ListByLocation)
}

type CreateEventLocationRequest struct {
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"min=0"`
	EventID    int     `json:"event_id" binding:"required"`
	LocationID int     `json:"location_id" binding:"required"`
}

type UpdateEventLocationRequest struct {
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
	EventID    *int     `json:"event_id"`
	LocationID *int     `json:"location_id"`
}

func (r *UpdateEventLocationRequest) empty() bool {
	return r.Name == nil && r.Price == nil && r.EventID == nil && r.LocationID == nil
}

func (h *EventLocationHandler) List(c *gin.Context) {
	var q ListQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	result, err := h.service.GetPaginated(c, q.Page-1, q.PerPage)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *EventLocationHandler) ListAll(c *gin.Context) {
	eventLocations, err := h.service.GetAll(c)
	if err != nil {
		h.handleError(c, err, "ListAll")
		return
	}
	c.JSON(http.StatusOK, eventLocations)
}

func (h *EventLocationHandler) GetByID(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		return
	}
	el, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, el)
}

// IsAvailable answers the purchasability check: 200 with the offering and
// both parents attached, 404 when the id is unknown, 409 when the offering
// exists but cannot currently be sold.
func (h *EventLocationHandler) IsAvailable(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		return
	}
	el, err := h.service.IsAvailable(c, id)
	if err != nil {
		h.handleError(c, err, "IsAvailable")
		return
	}
	c.JSON(http.StatusOK, el)
}

func (h *EventLocationHandler) ListByEvent(c *gin.Context) {
	eventID, err := ParseIDParam(c)
	if err != nil {
		return
	}
	eventLocations, err := h.service.GetByEvent(c, eventID)
	if err != nil {
		h.handleError(c, err, "ListByEvent")
		return
	}
	c.JSON(http.StatusOK, eventLocations)
}

func (h *EventLocationHandler) ListActiveByEvent(c *gin.Context) {
	eventID, err := ParseIDParam(c)
	if err != nil {
		return
	}
	eventLocations, err := h.service.GetActiveByEvent(c, eventID)
	if err != nil {
		h.handleError(c, err, "ListActiveByEvent")
		return
	}
	c.JSON(http.StatusOK, eventLocations)
}

func (h *EventLocationHandler) ListByLocation(c *gin.Context) {
	locationID, err := ParseIDParam(c)
	if err != nil {
		return
	}
	eventLocations, err := h.service.GetByLocation(c, locationID)
	if err != nil {
		h.handleError(c, err, "ListByLocation")
		return
	}
	c.JSON(http.StatusOK, eventLocations)
}

func (h *EventLocationHandler) Create(c *gin.Context) {
	var req CreateEventLocationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	el := &model.EventLocation{
		Name:       req.Name,
		Price:      req.Price,
		EventID:    req.EventID,
		LocationID: req.LocationID,
	}
	created, err := h.service.Create(c, el)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventLocationHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		return
	}
	var req UpdateEventLocationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}
	params := model.UpdateEventLocationParams{
		Name:       req.Name,
		Price:      req.Price,
		EventID:    req.EventID,
		LocationID: req.LocationID,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventLocationHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventLocationHandler) Restore(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		return
	}
	if err := h.service.Restore(c, id); err != nil {
		h.handleError(c, err, "Restore")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventLocationHandler) Activate(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		return
	}
	if err := h.service.Activate(c, id); err != nil {
		h.handleError(c, err, "Activate")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventLocationHandler) Deactivate(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		return
	}
	if err := h.service.Deactivate(c, id); err != nil {
		h.handleError(c, err, "Deactivate")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventLocationHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventLocationNotFound:
		log.Warn("Event location not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event location not found"})
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrLocationNotFound:
		log.Warn("Location not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
	case err == apperrors.ErrEventLocationUnavailable:
		log.Warn("Event location unavailable")
		c.JSON(http.StatusConflict, gin.H{"error": "Event location not available for sale"})
	case err == apperrors.ErrInvalidPagination:
		log.Warn("Invalid pagination")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
