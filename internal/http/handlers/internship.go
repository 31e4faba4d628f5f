package handlers

import (
	"net/http"
	"strings"
	"time"

	"internbridge/internal/app"
	"internbridge/internal/common"
	"internbridge/internal/domain/internship"
	"internbridge/internal/domain/listfield"
	"internbridge/internal/http/response"
)

type InternshipHandler struct {
	internships *app.InternshipService
}

func NewInternshipHandler(internships *app.InternshipService) *InternshipHandler {
	return &InternshipHandler{internships: internships}
}

func (h *InternshipHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := internship.Filter{
		Search:   strings.TrimSpace(query.Get("search")),
		WorkArea: strings.TrimSpace(query.Get("work_area")),
	}
	switch strings.TrimSpace(query.Get("modality")) {
	case "remote":
		remote := true
		filter.Remote = &remote
	case "on_site":
		remote := false
		filter.Remote = &remote
	}
	if companyID := strings.TrimSpace(query.Get("company_id")); companyID != "" {
		id, err := queryUUID(r, "company_id")
		if err != nil {
			response.Error(w, err)
			return
		}
		items, err := h.internships.ListByCompany(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, map[string]any{"internships": items})
		return
	}
	items, err := h.internships.ListActive(r.Context(), filter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"internships": items})
}

func (h *InternshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/internships/")
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.internships.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

type createInternshipRequest struct {
	CompanyID    string     `json:"company_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	WorkArea     string     `json:"work_area"`
	Schedule     string     `json:"schedule"`
	Salary       string     `json:"salary"`
	Duration     string     `json:"duration"`
	Requirements []string   `json:"requirements"`
	Benefits     any        `json:"benefits"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

func (h *InternshipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInternshipRequest
	if !decodeBody(w, r, &req) {
		return
	}
	companyID, err := common.ParseUUID(req.CompanyID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid company_id", map[string]string{"company_id": "invalid uuid"}))
		return
	}
	created, err := h.internships.Create(r.Context(), internship.Internship{
		CompanyID:    companyID,
		Title:        req.Title,
		Description:  req.Description,
		WorkArea:     req.WorkArea,
		Schedule:     req.Schedule,
		Salary:       req.Salary,
		Duration:     req.Duration,
		Requirements: req.Requirements,
		Benefits:     listfield.Decode(req.Benefits),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}
