package booking

import (
	"errors"
	"net/http"
	"strconv"

	"turnero/internal/api"
	"turnero/internal/auth"
	"turnero/internal/slot"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func slotIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slot id"})
		return 0, false
	}
	return id, true
}

// Book godoc
// @Summary      Book a slot
// @Description  Books an available slot for the authenticated member. All membership, quota and overlap checks run atomically.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Slot ID"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  gin.H
// @Failure      403  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Failure      409  {object}  gin.H
// @Router       /slots/{id}/book [post]
func (h *Handler) Book(c *gin.Context) {
	authCtx, ok := auth.GetContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := slotIDParam(c)
	if !ok {
		return
	}

	resp, err := h.service.Book(c.Request.Context(), authCtx, id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// BookOnBehalf godoc
// @Summary      Book a slot for a member
// @Description  Staff books an available slot for the given member. Same checks as a member booking.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Slot ID"
// @Param        request  body      BookOnBehalfRequest  true  "Target member"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /admin/slots/{id}/book [post]
func (h *Handler) BookOnBehalf(c *gin.Context) {
	authCtx, ok := auth.GetContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := slotIDParam(c)
	if !ok {
		return
	}

	var req BookOnBehalfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details, ok := api.BindingErrors(err); ok {
			api.RespondWithValidationErrors(c, details)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.BookOnBehalf(c.Request.Context(), authCtx, id, req.MemberID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Cancel godoc
// @Summary      Cancel a booking
// @Description  Releases the caller's confirmed slot back to available and credits the class when the plan rations them.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Slot ID"
// @Success      200  {object}  CancelResponse
// @Failure      400  {object}  gin.H
// @Failure      403  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Failure      409  {object}  gin.H
// @Router       /slots/{id}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	authCtx, ok := auth.GetContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := slotIDParam(c)
	if !ok {
		return
	}

	resp, err := h.service.Cancel(c.Request.Context(), authCtx, id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CancelOnBehalf godoc
// @Summary      Cancel any booking
// @Description  Staff releases any confirmed slot regardless of owner. The cancellation cutoff still applies.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Slot ID"
// @Success      200  {object}  CancelResponse
// @Failure      400  {object}  gin.H
// @Failure      403  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Failure      409  {object}  gin.H
// @Router       /admin/slots/{id}/cancel [post]
func (h *Handler) CancelOnBehalf(c *gin.Context) {
	authCtx, ok := auth.GetContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := slotIDParam(c)
	if !ok {
		return
	}

	resp, err := h.service.CancelOnBehalf(c.Request.Context(), authCtx, id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, slot.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
	case errors.Is(err, ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Slot is not available"})
	case errors.Is(err, ErrMembershipInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": "No active membership for that date"})
	case errors.Is(err, ErrQuotaExhausted):
		c.JSON(http.StatusConflict, gin.H{"error": "No classes remaining this period"})
	case errors.Is(err, ErrPlanLimitReached):
		c.JSON(http.StatusConflict, gin.H{"error": "Plan limit reached for this window"})
	case errors.Is(err, ErrOverlapConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a booking at this time"})
	case errors.Is(err, ErrCancellationWindowClosed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Too late to cancel this booking"})
	case errors.Is(err, ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "This booking belongs to another member"})
	case errors.Is(err, ErrStaffMustDelegate):
		c.JSON(http.StatusForbidden, gin.H{"error": "Staff must book on behalf of a member"})
	case errors.Is(err, ErrStaffOnly):
		c.JSON(http.StatusForbidden, gin.H{"error": "Staff role required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking operation failed"})
	}
}
