package handler

import (
	"net/http"
	"time"

	"event-booking-api/internal/model"
	"event-booking-api/internal/service"
	apperrors "event-booking-api/pkg/app_errors"
	"event-booking-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r gin.IRouter) {
	router := r.Group("/events")
	{
		router.GET("", h.List)
		router.GET("/all", h.ListAll)
		router.GET("/active", h.ListActive)
		router.GET("/name/:name", h.GetByName)
		router.GET("/start-date", h.ListByStartDate)
		router.GET("/sale-start", h.ListBySaleStart)
		router.GET("/:id", h.GetByID)
		router.POST("", h.Create)
		router.PUT("/:id", h.Update)
		router.DELETE("/:id", h.Delete)
		router.PUT("/:id/activate", h.Activate)
		router.PUT("/:id/deactivate", h.Deactivate)
		router.PUT("/:id/restore", h.Restore)
	}
}

type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description *string   `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	SaleStart   time.Time `json:"sale_start" binding:"required"`
	SaleEnd     time.Time `json:"sale_end" binding:"required"`
}

type UpdateEventRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	SaleStart   *time.Time `json:"sale_start"`
	SaleEnd     *time.Time `json:"sale_end"`
}

func (r *UpdateEventRequest) empty() bool {
	return r.Name == nil && r.Description == nil &&
		r.StartDate == nil && r.EndDate == nil &&
		r.SaleStart == nil && r.SaleEnd == nil
}

func (h *EventHandler) List(c *gin.Context) {
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

// ListAll is the administrative listing: deleted rows included.
func (h *EventHandler) ListAll(c *gin.Context) {
	events, err := h.service.GetAll(c)
	if err != nil {
		h.handleError(c, err, "ListAll")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) ListActive(c *gin.Context) {
	events, err := h.service.GetActive(c)
	if err != nil {
		h.handleError(c, err, "ListActive")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		return
	}
	event, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) GetByName(c *gin.Context) {
	event, err := h.service.GetByName(c, c.Param("name"))
	if err != nil {
		h.handleError(c, err, "GetByName")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) ListByStartDate(c *gin.Context) {
	date, err := ParseDateQuery(c, "date")
	if err != nil {
		return
	}
	events, err := h.service.GetByStartDate(c, date)
	if err != nil {
		h.handleError(c, err, "ListByStartDate")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) ListBySaleStart(c *gin.Context) {
	date, err := ParseDateQuery(c, "date")
	if err != nil {
		return
	}
	events, err := h.service.GetBySaleStart(c, date)
	if err != nil {
		h.handleError(c, err, "ListBySaleStart")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	event := &model.Event{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		SaleStart:   req.SaleStart,
		SaleEnd:     req.SaleEnd,
	}
	created, err := h.service.Create(c, event)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}
	params := model.UpdateEventParams{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		SaleStart:   req.SaleStart,
		SaleEnd:     req.SaleEnd,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
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

func (h *EventHandler) Restore(c *gin.Context) {
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

func (h *EventHandler) Activate(c *gin.Context) {
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

func (h *EventHandler) Deactivate(c *gin.Context) {
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

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrEventNameTaken:
		log.Warn("Event name taken")
		c.JSON(http.StatusConflict, gin.H{"error": "Event name already taken"})
	case err == apperrors.ErrInvalidSaleWindow:
		log.Warn("Invalid sale window")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sale start must not be after sale end"})
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
