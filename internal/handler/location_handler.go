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

type LocationHandler struct {
	service service.LocationService
}

func NewLocationHandler(service service.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) RegisterRoutes(r gin.IRouter) {
	router := r.Group("/locations")
	{
		router.GET("", h.List)
		router.GET("/all", h.ListAll)
		router.GET("/active", h.ListActive)
		router.GET("/name/:name", h.GetByName)
		router.GET("/:id", h.GetByID)
		router.POST("", h.Create)
		router.PUT("/:id", h.Update)
		router.DELETE("/:id", h.Delete)
		router.PUT("/:id/activate", h.Activate)
		router.PUT("/:id/deactivate", h.Deactivate)
		router.PUT("/:id/restore", h.Restore)
	}
}

type CreateLocationRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

type UpdateLocationRequest struct {
	Name     *string `json:"name"`
	Capacity *int    `json:"capacity"`
}

func (h *LocationHandler) List(c *gin.Context) {
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

func (h *LocationHandler) ListAll(c *gin.Context) {
	locations, err := h.service.GetAll(c)
	if err != nil {
		h.handleError(c, err, "ListAll")
		return
	}
	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) ListActive(c *gin.Context) {
	locations, err := h.service.GetActive(c)
	if err != nil {
		h.handleError(c, err, "ListActive")
		return
	}
	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) GetByID(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		return
	}
	location, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) GetByName(c *gin.Context) {
	location, err := h.service.GetByName(c, c.Param("name"))
	if err != nil {
		h.handleError(c, err, "GetByName")
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req CreateLocationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	location := &model.Location{
		Name:     req.Name,
		Capacity: req.Capacity,
	}
	created, err := h.service.Create(c, location)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *LocationHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		return
	}
	var req UpdateLocationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Name == nil && req.Capacity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one of name or capacity is required"})
		return
	}
	params := model.UpdateLocationParams{
		Name:     req.Name,
		Capacity: req.Capacity,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *LocationHandler) Delete(c *gin.Context) {
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

func (h *LocationHandler) Restore(c *gin.Context) {
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

func (h *LocationHandler) Activate(c *gin.Context) {
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

func (h *LocationHandler) Deactivate(c *gin.Context) {
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

func (h *LocationHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrLocationNotFound:
		log.Warn("Location not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
	case err == apperrors.ErrLocationNameTaken:
		log.Warn("Location name taken")
		c.JSON(http.StatusConflict, gin.H{"error": "Location name already taken"})
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
