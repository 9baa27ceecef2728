package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xavierca1/ligue-landing/internal/entity"
	"github.com/xavierca1/ligue-landing/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-landing/internal/usecase"
)

type LeadHandler struct {
	CreateLeadUC       *usecase.CreateLeadUseCase
	GetLeadsUC         *usecase.GetLeadsUseCase
	UpdateLeadStatusUC *usecase.UpdateLeadStatusUseCase
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	getUC *usecase.GetLeadsUseCase,
	updateStatusUC *usecase.UpdateLeadStatusUseCase,
) *LeadHandler {
	return &LeadHandler{
		CreateLeadUC:       createUC,
		GetLeadsUC:         getUC,
		UpdateLeadStatusUC: updateStatusUC,
	}
}

// CreateLead (POST /createLead)
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	middleware.RecordLeadCreated(lead.Source)
	writeJSON(w, http.StatusCreated, lead)
}

// GetLeads (GET /getLeads?status=&source=&interest_level=&created_after=&created_before=)
func (h *LeadHandler) GetLeads(w http.ResponseWriter, r *http.Request) {
	input, err := parseGetLeadsQuery(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, CodeInvalidQuery, err.Error())
		return
	}

	leads, err := h.GetLeadsUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	if leads == nil {
		leads = []entity.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}

// UpdateLeadStatus (POST /updateLeadStatus)
func (h *LeadHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadStatusInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.UpdateLeadStatusUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func parseGetLeadsQuery(r *http.Request) (usecase.GetLeadsInput, error) {
	q := r.URL.Query()
	var input usecase.GetLeadsInput

	if v := q.Get("status"); v != "" {
		status := entity.LeadStatus(v)
		input.Status = &status
	}
	if v := q.Get("source"); v != "" {
		input.Source = &v
	}
	if v := q.Get("interest_level"); v != "" {
		level := entity.InterestLevel(v)
		input.InterestLevel = &level
	}

	var err error
	if input.CreatedAfter, err = parseTimeParam(q.Get("created_after"), "created_after"); err != nil {
		return input, err
	}
	if input.CreatedBefore, err = parseTimeParam(q.Get("created_before"), "created_before"); err != nil {
		return input, err
	}
	return input, nil
}

func parseTimeParam(raw, name string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an RFC3339 timestamp", name)
	}
	return &t, nil
}
