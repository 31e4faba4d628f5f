package handlers

import (
	"net/http"
	"strings"

	"internbridge/internal/app"
	"internbridge/internal/common"
	"internbridge/internal/domain/application"
	"internbridge/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
}

func NewApplicationHandler(applications *app.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type submitRequest struct {
	StudentID    string `json:"student_id"`
	InternshipID string `json:"internship_id"`
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	studentID, err := common.ParseUUID(req.StudentID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid student_id", map[string]string{"student_id": "invalid uuid"}))
		return
	}
	internshipID, err := common.ParseUUID(req.InternshipID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid internship_id", map[string]string{"internship_id": "invalid uuid"}))
		return
	}
	created, err := h.applications.Submit(r.Context(), studentID, internshipID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// List serves the original query surface of /applications: a
// (student_id, internship_id) pair checks whether the student already
// applied, a bare student_id or company_id lists that side's view.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	hasStudent := strings.TrimSpace(query.Get("student_id")) != ""
	hasInternship := strings.TrimSpace(query.Get("internship_id")) != ""
	hasCompany := strings.TrimSpace(query.Get("company_id")) != ""

	switch {
	case hasStudent && hasInternship:
		studentID, err := queryUUID(r, "student_id")
		if err != nil {
			response.Error(w, err)
			return
		}
		internshipID, err := queryUUID(r, "internship_id")
		if err != nil {
			response.Error(w, err)
			return
		}
		applied, existing, err := h.applications.CheckApplied(r.Context(), studentID, internshipID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, map[string]any{"applied": applied, "application": existing})
	case hasStudent:
		studentID, err := queryUUID(r, "student_id")
		if err != nil {
			response.Error(w, err)
			return
		}
		items, err := h.applications.ListByStudent(r.Context(), studentID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, map[string]any{"applications": items})
	case hasCompany:
		companyID, err := queryUUID(r, "company_id")
		if err != nil {
			response.Error(w, err)
			return
		}
		items, err := h.applications.ListByCompany(r.Context(), companyID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, map[string]any{"applications": items})
	default:
		response.Error(w, common.NewValidationError("missing parameters", map[string]string{"query": "student_id or company_id is required"}))
	}
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/applications/")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req changeStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	updated, err := h.applications.ChangeStatus(r.Context(), id, application.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
