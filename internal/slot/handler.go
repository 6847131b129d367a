package slot

import (
	"errors"
	"net/http"
	"time"

	"turnero/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	loc     *time.Location
}

func NewHandler(service Service, loc *time.Location) *Handler {
	return &Handler{service: service, loc: loc}
}

// GenerateWeek godoc
// @Summary      Generate a week of slots
// @Description  Tops up every operating hour of the target week to the requested capacity. Idempotent. Staff only.
// @Tags         slots
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateWeekRequest  true  "Week start date (any day of the target week) and capacity"
// @Success      200      {object}  GenerateWeekResponse
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/slots/generate [post]
func (h *Handler) GenerateWeek(c *gin.Context) {
	var req GenerateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details, ok := api.BindingErrors(err); ok {
			api.RespondWithValidationErrors(c, details)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	weekStart, err := time.ParseInLocation("2006-01-02", req.WeekStartDate, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start_date must be YYYY-MM-DD"})
		return
	}

	resp, err := h.service.GenerateWeek(c.Request.Context(), weekStart, req.CapacityPerHour)
	if err != nil {
		if errors.Is(err, ErrCapacityExceeded) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "capacity_per_hour is out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate week"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateSingle godoc
// @Summary      Create an ad-hoc slot
// @Description  Creates one available slot at the given whole hour. Staff only.
// @Tags         slots
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSlotRequest  true  "Slot start time (RFC3339, whole hour)"
// @Success      201      {object}  Slot
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/slots [post]
func (h *Handler) CreateSingle(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details, ok := api.BindingErrors(err); ok {
			api.RespondWithValidationErrors(c, details)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be RFC3339"})
		return
	}

	created, err := h.service.CreateSingle(c.Request.Context(), start)
	if err != nil {
		if errors.Is(err, ErrInvalidSlotTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Start time must be a whole hour inside the operating window"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create slot"})
		return
	}

	c.JSON(http.StatusCreated, created)
}
