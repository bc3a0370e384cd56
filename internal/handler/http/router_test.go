package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklens/worklens-backend-go/internal/domain/idle"
	"github.com/worklens/worklens-backend-go/internal/domain/reference"
	"github.com/worklens/worklens-backend-go/internal/domain/report"
	"github.com/worklens/worklens-backend-go/internal/domain/user"
	"github.com/worklens/worklens-backend-go/internal/pkg/jwt"
)

const routerTestSecret = "test-secret-key-for-jwt"

type stubReportService struct {
	invalidated []report.DWMRequest
}

func (s *stubReportService) GetTaskStats(ctx context.Context, req report.TaskStatsRequest) (report.TaskStatsResponse, error) {
	return report.TaskStatsResponse{Tasks: []report.TaskRow{}}, nil
}

func (s *stubReportService) GetDWMReport(ctx context.Context, req report.DWMRequest) (report.DWMResponse, error) {
	return report.DWMResponse{StartDate: req.StartDate, EndDate: req.EndDate, Rows: []report.DWMRow{}}, nil
}

func (s *stubReportService) GetDWMDrilldown(ctx context.Context, req report.DrilldownRequest) (report.DrilldownResponse, error) {
	return report.DrilldownResponse{Items: []report.TaskRow{}}, nil
}

func (s *stubReportService) GetTimeLog(ctx context.Context, req report.TimeLogRequest) (report.TimeLogResponse, error) {
	return report.TimeLogResponse{Rows: []report.TimeLogRow{}}, nil
}

func (s *stubReportService) GetConsolidatedTimeLog(ctx context.Context, req report.TimeLogRequest) (report.ConsolidatedTimeLogResponse, error) {
	return report.ConsolidatedTimeLogResponse{Rows: []report.ConsolidatedRow{}}, nil
}

func (s *stubReportService) InvalidateDWM(ctx context.Context, req report.DWMRequest) {
	s.invalidated = append(s.invalidated, req)
}

type stubIdleService struct{}

func (s *stubIdleService) GetMyItems(ctx context.Context, req idle.MyItemsRequest) (idle.MyItemsResponse, error) {
	return idle.MyItemsResponse{Pending: []idle.ItemRow{}, Resolved: []idle.ItemRow{}}, nil
}

func (s *stubIdleService) SubmitReason(ctx context.Context, itemID string, req idle.SubmitReasonRequest) (idle.ItemRow, error) {
	return idle.ItemRow{ID: itemID, Status: string(idle.StatusSubmitted)}, nil
}

func (s *stubIdleService) RecordDetection(ctx context.Context, orgID, employeeID string, date time.Time, idleMinutes int) (idle.Item, error) {
	return idle.Item{}, nil
}

func (s *stubIdleService) AttachTicket(ctx context.Context, itemID, ticketID string) (idle.Item, error) {
	return idle.Item{ID: itemID, Status: idle.StatusTicketCreated, TicketID: &ticketID}, nil
}

type stubReferenceRepo struct{}

func (s *stubReferenceRepo) ListOrgIDs(ctx context.Context) ([]string, error) {
	return []string{"org-1"}, nil
}

func (s *stubReferenceRepo) ListDepartments(ctx context.Context, orgID string) ([]reference.Department, error) {
	return []reference.Department{}, nil
}

func (s *stubReferenceRepo) GetTaxonomy(ctx context.Context, orgID string) (reference.Taxonomy, error) {
	return reference.Taxonomy{}, nil
}

func newTestRouter(reportSvc report.Service) (http.Handler, jwt.Service) {
	jwtService := jwt.NewJWTService(routerTestSecret, "1h")
	return NewRouter(
		jwtService,
		NewReportHandler(reportSvc),
		NewIdleHandler(&stubIdleService{}),
		NewReferenceHandler(&stubReferenceRepo{}),
		"test",
	), jwtService
}

func bearerToken(t *testing.T, jwtService jwt.Service, caps user.Capabilities) string {
	token, _, err := jwtService.GenerateAccessToken("emp-1", "org-1", "Engineering", caps)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	router, _ := newTestRouter(&stubReportService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/dwm", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RejectsMissingCapability(t *testing.T) {
	router, jwtService := newTestRouter(&stubReportService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/dwm?start_date=2025-08-01&end_date=2025-08-05", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, user.Capabilities{user.CapabilityViewOwnReports}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ServesReportsWithCapability(t *testing.T) {
	router, jwtService := newTestRouter(&stubReportService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/dwm?start_date=2025-08-01&end_date=2025-08-05", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, user.Capabilities{user.CapabilityViewAllReports}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestRouter_ConsolidatedAcceptsEitherCapability(t *testing.T) {
	router, jwtService := newTestRouter(&stubReportService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/time-log/consolidated", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, user.Capabilities{user.CapabilityViewConsolidated}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_IdleQueueRequiresOnlyAuthentication(t *testing.T) {
	router, jwtService := newTestRouter(&stubReportService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/idle/my", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_InvalidateDWMReachesService(t *testing.T) {
	reportSvc := &stubReportService{}
	router, jwtService := newTestRouter(reportSvc)

	payload, err := json.Marshal(report.DWMRequest{
		StartDate:  "2025-08-01",
		EndDate:    "2025-08-05",
		Department: "Engineering",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/dwm/invalidate", bytes.NewReader(payload))
	req.Header.Set("Authorization", bearerToken(t, jwtService, user.Capabilities{user.CapabilityViewAllReports}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, reportSvc.invalidated, 1)
	assert.Equal(t, "2025-08-01", reportSvc.invalidated[0].StartDate)
	assert.Equal(t, "Engineering", reportSvc.invalidated[0].Department)
}

func TestRouter_InvalidateDWMRejectsMalformedBody(t *testing.T) {
	reportSvc := &stubReportService{}
	router, jwtService := newTestRouter(reportSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/dwm/invalidate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Authorization", bearerToken(t, jwtService, user.Capabilities{user.CapabilityViewAllReports}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, reportSvc.invalidated)
}
