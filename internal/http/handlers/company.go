package handlers

import (
	"net/http"

	"internbridge/internal/app"
	"internbridge/internal/domain/company"
	"internbridge/internal/http/response"
)

type CompanyHandler struct {
	companies *app.CompanyService
}

func NewCompanyHandler(companies *app.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/companies/")
	if err != nil {
		response.Error(w, err)
		return
	}
	c, err := h.companies.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, c)
}

func (h *CompanyHandler) Locations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/companies/")
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.companies.Locations(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"locations": items})
}

type locationsRequest struct {
	Locations []struct {
		Name      string `json:"name"`
		Address   string `json:"address"`
		IsRemote  bool   `json:"is_remote"`
		IsPrimary bool   `json:"is_primary"`
	} `json:"locations"`
}

func (h *CompanyHandler) UpdateLocations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/companies/")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req locationsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	locations := make([]company.Location, 0, len(req.Locations))
	for _, loc := range req.Locations {
		locations = append(locations, company.Location{
			Name:      loc.Name,
			Address:   loc.Address,
			IsRemote:  loc.IsRemote,
			IsPrimary: loc.IsPrimary,
		})
	}
	if err := h.companies.UpdateLocations(r.Context(), id, locations); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *CompanyHandler) Benefits(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/companies/")
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.companies.Benefits(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"benefits": items})
}

type benefitsRequest struct {
	Benefits []string `json:"benefits"`
}

func (h *CompanyHandler) UpdateBenefits(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/companies/")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req benefitsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.companies.UpdateBenefits(r.Context(), id, req.Benefits); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"success": true})
}
