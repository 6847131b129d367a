package membership

import (
	"errors"
	"net/http"
	"time"

	"turnero/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
	loc  *time.Location
}

func NewHandler(repo Repository, loc *time.Location) *Handler {
	return &Handler{repo: repo, loc: loc}
}

// ListPlans godoc
// @Summary      Available plans
// @Description  Active plans with their limit type and count.
// @Tags         membership
// @Produce      json
// @Success      200  {array}   Plan
// @Failure      500  {object}  gin.H
// @Router       /plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.repo.ListPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// MyMembership godoc
// @Summary      My active membership
// @Description  The caller's membership period covering today, with the plan and remaining classes.
// @Tags         membership
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  PeriodWithPlan
// @Failure      401  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /membership/me [get]
func (h *Handler) MyMembership(c *gin.Context) {
	authCtx, ok := auth.GetContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	local := time.Now().In(h.loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	period, err := h.repo.GetActiveForMemberOn(c.Request.Context(), authCtx.MemberID, today)
	if err != nil {
		if errors.Is(err, ErrNoActivePeriod) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active membership"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load membership"})
		return
	}

	c.JSON(http.StatusOK, period)
}
