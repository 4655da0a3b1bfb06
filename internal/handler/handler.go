package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/equilease/lease-service/internal/models"
	"github.com/equilease/lease-service/internal/proposal"
	"github.com/equilease/lease-service/internal/repository"
	"github.com/equilease/lease-service/internal/service"
	"github.com/gorilla/mux"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// CreateDeal handles profile submission: underwrites and persists a deal.
func (h *Handler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	var profile models.BusinessProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	deal, err := h.svc.CreateDeal(r.Context(), profile)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, deal)
}

// ListDeals handles filtered listing.
func (h *Handler) ListDeals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.DealFilter{
		Status:       q.Get("status"),
		BusinessType: q.Get("business_type"),
		Location:     q.Get("location"),
		RiskBucket:   q.Get("risk"),
	}

	deals, err := h.svc.ListDeals(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deals)
}

// GetDeal handles retrieval of a single full record.
func (h *Handler) GetDeal(w http.ResponseWriter, r *http.Request) {
	deal, err := h.svc.GetDeal(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deal)
}

// SetStatus handles deal status transitions.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	deal, err := h.svc.SetStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deal)
}

// GetContract renders the draft contract for a deal as plain text.
func (h *Handler) GetContract(w http.ResponseWriter, r *http.Request) {
	contract, err := h.svc.RenderContract(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(contract))
}

// GetProposal returns the proposal text stored at creation time.
func (h *Handler) GetProposal(w http.ResponseWriter, r *http.Request) {
	deal, err := h.svc.GetDeal(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(deal.Proposal))
}

// ExportDeal returns the deal record as an XML document.
func (h *Handler) ExportDeal(w http.ResponseWriter, r *http.Request) {
	deal, err := h.svc.GetDeal(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := proposal.RenderDealXML(*deal)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Write(out)
}

// SendProposal mails the stored proposal to landlord recipients.
func (h *Handler) SendProposal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Recipients []string `json:"recipients"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.SendProposal(r.Context(), mux.Vars(r)["id"], req.Recipients); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "sent"})
}

// Stats returns portfolio metrics over all deals.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.PortfolioStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrDealNotFound):
		http.Error(w, "deal not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
