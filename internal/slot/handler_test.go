package slot

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSlotRouter(t *testing.T, repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	loc := serviceLoc(t)

	handler := NewHandler(NewService(repo, loc, nil), loc)
	router := gin.New()
	router.POST("/admin/slots/generate", handler.GenerateWeek)
	router.POST("/admin/slots", handler.CreateSingle)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandlerGenerateWeek(t *testing.T) {
	repo := new(MockSlotRepo)
	repo.On("CountBookableForHour", mock.Anything, mock.Anything).Return(1, nil)
	repo.On("HasBlockedMarker", mock.Anything, mock.Anything).Return(true, nil)

	router := newSlotRouter(t, repo)

	monday := futureMonday(t, serviceLoc(t))
	w := postJSON(router, "/admin/slots/generate", GenerateWeekRequest{
		WeekStartDate:   monday.Format("2006-01-02"),
		CapacityPerHour: 1,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp GenerateWeekResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.SlotsCreated)
}

func TestHandlerGenerateWeek_BadDate(t *testing.T) {
	router := newSlotRouter(t, new(MockSlotRepo))

	w := postJSON(router, "/admin/slots/generate", GenerateWeekRequest{
		WeekStartDate:   "07-09-2026",
		CapacityPerHour: 1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerGenerateWeek_MissingFields(t *testing.T) {
	router := newSlotRouter(t, new(MockSlotRepo))

	w := postJSON(router, "/admin/slots/generate", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	assert.Contains(t, w.Body.String(), "WeekStartDate is required")
	assert.Contains(t, w.Body.String(), "CapacityPerHour is required")
}

func TestHandlerGenerateWeek_CapacityOutOfRange(t *testing.T) {
	router := newSlotRouter(t, new(MockSlotRepo))

	monday := futureMonday(t, serviceLoc(t))
	w := postJSON(router, "/admin/slots/generate", GenerateWeekRequest{
		WeekStartDate:   monday.Format("2006-01-02"),
		CapacityPerHour: MaxCapacityPerHour + 1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerCreateSingle_InvalidHour(t *testing.T) {
	router := newSlotRouter(t, new(MockSlotRepo))

	// Sunday is closed.
	w := postJSON(router, "/admin/slots", CreateSlotRequest{
		StartTime: "2026-09-13T10:00:00-03:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
