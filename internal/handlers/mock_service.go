package handlers

import (
	"context"
	"net/http"

	"homehub/internal/models"
	"homehub/internal/service"
	"homehub/internal/store"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockScenes struct {
	scenes    []models.LightingScene
	created   models.LightingScene
	createErr error
	updated   models.LightingScene
	updateErr error
	deleteErr error

	activated   models.LightingScene
	listeners   int
	activateErr error

	lastCreate     models.LightingScene
	lastUpdateID   string
	lastPatch      service.ScenePatch
	lastDeleteID   string
	lastActivateID string
	activateCalls  int
}

func (m *mockScenes) List(ctx context.Context) []models.LightingScene { return m.scenes }
func (m *mockScenes) Create(ctx context.Context, s models.LightingScene) (models.LightingScene, error) {
	m.lastCreate = s
	return m.created, m.createErr
}
func (m *mockScenes) Update(ctx context.Context, id string, p service.ScenePatch) (models.LightingScene, error) {
	m.lastUpdateID = id
	m.lastPatch = p
	return m.updated, m.updateErr
}
func (m *mockScenes) Delete(ctx context.Context, id string) error {
	m.lastDeleteID = id
	return m.deleteErr
}
func (m *mockScenes) Activate(ctx context.Context, id string) (models.LightingScene, int, error) {
	m.lastActivateID = id
	m.activateCalls++
	return m.activated, m.listeners, m.activateErr
}

type mockBills struct {
	bills []models.Bill

	lastAdd      models.Bill
	lastUpdateID string
	lastPatch    store.BillPatch
	lastDeleteID string
	lastPaidID   string
}

func (m *mockBills) List(ctx context.Context) []models.Bill { return m.bills }
func (m *mockBills) Add(ctx context.Context, b models.Bill) models.Bill {
	m.lastAdd = b
	return b
}
func (m *mockBills) Update(ctx context.Context, id string, p store.BillPatch) {
	m.lastUpdateID = id
	m.lastPatch = p
}
func (m *mockBills) Delete(ctx context.Context, id string)   { m.lastDeleteID = id }
func (m *mockBills) MarkPaid(ctx context.Context, id string) { m.lastPaidID = id }

type mockDashboard struct {
	data         models.DashboardData
	getCalls     int
	refreshCalls int
}

func (m *mockDashboard) Get(ctx context.Context) models.DashboardData {
	m.getCalls++
	return m.data
}
func (m *mockDashboard) Refresh(ctx context.Context) models.DashboardData {
	m.refreshCalls++
	return m.data
}

type mockThreats struct {
	history []models.ThreatSummary
	summary models.ThreatSummary

	lastLat float64
	lastLon float64
}

func (m *mockThreats) History(ctx context.Context) []models.ThreatSummary { return m.history }
func (m *mockThreats) Refresh(ctx context.Context, lat, lon float64) models.ThreatSummary {
	m.lastLat = lat
	m.lastLon = lon
	return m.summary
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil, 0, 0)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
