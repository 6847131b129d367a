package calendar

import (
	"net/http"
	"strconv"
	"time"

	"turnero/internal/auth"

	"github.com/gin-gonic/gin"
)

const maxRangeDays = 31

type Handler struct {
	service Service
	loc     *time.Location
}

func NewHandler(service Service, loc *time.Location) *Handler {
	return &Handler{service: service, loc: loc}
}

func (h *Handler) parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	fromStr := c.DefaultQuery("from", time.Now().In(h.loc).Format("2006-01-02"))
	from, err := time.ParseInLocation("2006-01-02", fromStr, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > maxRangeDays {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 31"})
		return time.Time{}, time.Time{}, false
	}

	return from, from.AddDate(0, 0, days), true
}

// Calendar godoc
// @Summary      Calendar view
// @Description  Per-day, per-hour availability. Members additionally see their own bookings; staff sees every assignment.
// @Tags         calendar
// @Produce      json
// @Param        from  query     string  false  "Start date (YYYY-MM-DD, default today)"
// @Param        days  query     int     false  "Number of days (default 7, max 31)"
// @Success      200   {array}   DaySchedule
// @Failure      400   {object}  gin.H
// @Router       /calendar [get]
func (h *Handler) Calendar(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}

	var caller *auth.Context
	if authCtx, ok := auth.GetContext(c); ok {
		caller = &authCtx
	}

	days, err := h.service.Calendar(c.Request.Context(), caller, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load calendar"})
		return
	}

	c.JSON(http.StatusOK, days)
}

// ListMine godoc
// @Summary      My bookings
// @Description  Every slot currently or historically assigned to the caller, oldest first.
// @Tags         calendar
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   SlotSummary
// @Failure      401  {object}  gin.H
// @Router       /bookings/mine [get]
func (h *Handler) ListMine(c *gin.Context) {
	authCtx, ok := auth.GetContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	mine, err := h.service.ListMine(c.Request.Context(), authCtx.MemberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}

	c.JSON(http.StatusOK, mine)
}

// Occupancy godoc
// @Summary      Daily occupancy report
// @Description  Confirmed, finalized and still-available counts per day. Staff only.
// @Tags         calendar
// @Security     BearerAuth
// @Produce      json
// @Param        from  query     string  false  "Start date (YYYY-MM-DD, default today)"
// @Param        days  query     int     false  "Number of days (default 7, max 31)"
// @Success      200   {array}   DayOccupancy
// @Failure      400   {object}  gin.H
// @Router       /admin/reports/occupancy [get]
func (h *Handler) Occupancy(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}

	stats, err := h.service.OccupancyByDay(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load occupancy"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
