package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/equilease/lease-service/internal/handler"
	"github.com/equilease/lease-service/internal/models"
	"github.com/equilease/lease-service/internal/repository"
	"github.com/equilease/lease-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	store, err := repository.NewFileStore(filepath.Join(t.TempDir(), "deals.json"))
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := service.NewService(store, nil, log)
	h := handler.NewHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/deals", h.CreateDeal).Methods("POST")
	r.HandleFunc("/deals", h.ListDeals).Methods("GET")
	r.HandleFunc("/deals/{id}", h.GetDeal).Methods("GET")
	r.HandleFunc("/deals/{id}/status", h.SetStatus).Methods("PATCH")
	r.HandleFunc("/deals/{id}/contract", h.GetContract).Methods("GET")
	r.HandleFunc("/deals/{id}/proposal", h.GetProposal).Methods("GET")
	r.HandleFunc("/deals/{id}/export", h.ExportDeal).Methods("GET")
	r.HandleFunc("/stats", h.Stats).Methods("GET")
	return r
}

func profileBody() []byte {
	body, _ := json.Marshal(models.BusinessProfile{
		BusinessName:        "TechStart Solutions",
		BusinessType:        models.BusinessTypeSaaS,
		Industry:            models.IndustryTechnology,
		Location:            "Manhattan, NY",
		SpaceSize:           1200,
		CurrentRevenue:      8000,
		ProjectedRevenue12M: 15000,
		RunwayMonths:        12,
		TeamSize:            6,
		FounderExperience:   models.ExperienceSerial,
		HasRevenue:          true,
		HasCustomers:        true,
	})
	return body
}

func do(r *mux.Router, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createDeal(t *testing.T, r *mux.Router) models.Deal {
	t.Helper()
	rec := do(r, http.MethodPost, "/deals", profileBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var deal models.Deal
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&deal))
	return deal
}

func TestCreateDeal_ReturnsUnderwrittenRecord(t *testing.T) {
	r := newTestRouter(t)
	deal := createDeal(t, r)

	assert.NotEmpty(t, deal.ID)
	assert.Equal(t, models.StatusPending, deal.Status)
	assert.Equal(t, 2500.0, deal.MonthlyMarketRent)
	assert.NotEmpty(t, deal.Proposal)
}

func TestCreateDeal_InvalidBody(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPost, "/deals", []byte("{broken"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDeal_ValidationError(t *testing.T) {
	r := newTestRouter(t)

	body, _ := json.Marshal(models.BusinessProfile{BusinessName: "X", SpaceSize: 0, TeamSize: 1})
	rec := do(r, http.MethodPost, "/deals", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "space_size")
}

func TestGetDeal(t *testing.T) {
	r := newTestRouter(t)
	deal := createDeal(t, r)

	rec := do(r, http.MethodGet, "/deals/"+deal.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Deal
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, deal.ID, got.ID)
	assert.Equal(t, deal.RiskScore, got.RiskScore)
}

func TestGetDeal_NotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodGet, "/deals/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetStatus(t *testing.T) {
	r := newTestRouter(t)
	deal := createDeal(t, r)

	rec := do(r, http.MethodPatch, "/deals/"+deal.ID+"/status", []byte(`{"status":"approved"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Deal
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, models.StatusApproved, updated.Status)
	assert.NotNil(t, updated.ApprovedAt)
	assert.Nil(t, updated.RejectedAt)
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	r := newTestRouter(t)
	deal := createDeal(t, r)

	rec := do(r, http.MethodPatch, "/deals/"+deal.ID+"/status", []byte(`{"status":"archived"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetStatus_NotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPatch, "/deals/ghost/status", []byte(`{"status":"approved"}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDeals_StatusFilter(t *testing.T) {
	r := newTestRouter(t)
	first := createDeal(t, r)
	createDeal(t, r)

	rec := do(r, http.MethodPatch, "/deals/"+first.ID+"/status", []byte(`{"status":"approved"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, http.MethodGet, "/deals?status=approved", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var deals []models.Deal
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&deals))
	require.Len(t, deals, 1)
	assert.Equal(t, first.ID, deals[0].ID)
}

func TestGetContract(t *testing.T) {
	r := newTestRouter(t)
	deal := createDeal(t, r)

	rec := do(r, http.MethodGet, "/deals/"+deal.ID+"/contract", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, rec.Body.String(), "EQUILEASE HYBRID LEASE AGREEMENT")
}

func TestGetProposal_ReturnsStoredText(t *testing.T) {
	r := newTestRouter(t)
	deal := createDeal(t, r)

	rec := do(r, http.MethodGet, "/deals/"+deal.ID+"/proposal", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, deal.Proposal, rec.Body.String())
}

func TestExportDeal_XML(t *testing.T) {
	r := newTestRouter(t)
	deal := createDeal(t, r)

	rec := do(r, http.MethodGet, "/deals/"+deal.ID+"/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `<deal id="`+deal.ID+`"`)
}

func TestStats(t *testing.T) {
	r := newTestRouter(t)
	createDeal(t, r)
	createDeal(t, r)

	rec := do(r, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.PortfolioStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 2, stats.TotalDeals)
	assert.Equal(t, 2, stats.PendingDeals)
}
