package membership

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"turnero/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret"

type MockMembershipRepo struct {
	mock.Mock
}

func (m *MockMembershipRepo) GetActiveForMemberOn(ctx context.Context, memberID int, date time.Time) (*PeriodWithPlan, error) {
	args := m.Called(ctx, memberID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PeriodWithPlan), args.Error(1)
}

func (m *MockMembershipRepo) GetMember(ctx context.Context, memberID int) (*Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockMembershipRepo) ListPlans(ctx context.Context) ([]Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Plan), args.Error(1)
}

func newMembershipRouter(t *testing.T, repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	handler := NewHandler(repo, loc)
	router := gin.New()
	router.GET("/plans", handler.ListPlans)
	router.GET("/membership/me", auth.Middleware(handlerTestSecret), handler.MyMembership)
	return router
}

func getWithToken(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandlerListPlans(t *testing.T) {
	repo := new(MockMembershipRepo)
	repo.On("ListPlans", mock.Anything).Return([]Plan{
		{ID: 1, Name: "2x Semanal", LimitType: LimitWeekly, LimitCount: 2},
		{ID: 2, Name: "3x Semanal", LimitType: LimitWeekly, LimitCount: 3},
		{ID: 3, Name: "Pase Libre", LimitType: LimitUnlimited},
	}, nil)

	router := newMembershipRouter(t, repo)

	w := getWithToken(router, "/plans", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var plans []Plan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	require.Len(t, plans, 3)
	assert.Equal(t, "Pase Libre", plans[2].Name)
}

func TestHandlerMyMembership(t *testing.T) {
	repo := new(MockMembershipRepo)
	repo.On("GetActiveForMemberOn", mock.Anything, 1, mock.Anything).Return(&PeriodWithPlan{
		Period:         Period{ID: 10, MemberID: 1, ClassesTotal: 8, ClassesRemaining: 5},
		PlanName:       "2x Semanal",
		PlanLimitType:  LimitWeekly,
		PlanLimitCount: 2,
	}, nil)

	router := newMembershipRouter(t, repo)

	token, err := auth.GenerateToken(1, auth.RoleMember, handlerTestSecret)
	require.NoError(t, err)

	w := getWithToken(router, "/membership/me", token)
	assert.Equal(t, http.StatusOK, w.Code)

	var period PeriodWithPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &period))
	assert.Equal(t, 5, period.ClassesRemaining)
	assert.Equal(t, "2x Semanal", period.PlanName)
}

func TestHandlerMyMembership_Unauthenticated(t *testing.T) {
	router := newMembershipRouter(t, new(MockMembershipRepo))

	w := getWithToken(router, "/membership/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandlerMyMembership_NoActivePeriod(t *testing.T) {
	repo := new(MockMembershipRepo)
	repo.On("GetActiveForMemberOn", mock.Anything, 1, mock.Anything).Return(nil, ErrNoActivePeriod)

	router := newMembershipRouter(t, repo)

	token, err := auth.GenerateToken(1, auth.RoleMember, handlerTestSecret)
	require.NoError(t, err)

	w := getWithToken(router, "/membership/me", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
