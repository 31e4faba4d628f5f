package handlers

import (
	"net/http"

	"internbridge/internal/app"
	"internbridge/internal/domain/student"
	"internbridge/internal/http/response"
)

type StudentHandler struct {
	students *app.StudentService
}

func NewStudentHandler(students *app.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/students/")
	if err != nil {
		response.Error(w, err)
		return
	}
	s, err := h.students.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, s)
}

type updateStudentRequest struct {
	FullName   string  `json:"full_name"`
	University string  `json:"university"`
	Career     string  `json:"career"`
	Semester   int     `json:"semester"`
	GPA        float64 `json:"gpa"`
	// Skills and languages arrive in any of the accepted shapes: a JSON
	// list, a serialized list, or comma-separated text.
	Skills    any `json:"skills"`
	Languages any `json:"languages"`
}

func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/students/")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateStudentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	updated, err := h.students.UpdateProfile(r.Context(), id, student.Student{
		FullName:   req.FullName,
		University: req.University,
		Career:     req.Career,
		Semester:   req.Semester,
		GPA:        req.GPA,
	}, req.Skills, req.Languages)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
