package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"internbridge/internal/common"
)

func TestErrorMapsCodesToStatuses(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   common.Code
	}{
		{common.NewError(common.CodeNotFound, "student not found", nil), http.StatusNotFound, common.CodeNotFound},
		{common.NewError(common.CodeConflict, "already applied", nil), http.StatusConflict, common.CodeConflict},
		{common.NewError(common.CodeForbidden, "not yours", nil), http.StatusForbidden, common.CodeForbidden},
		{common.NewValidationError("bad input", nil), http.StatusBadRequest, common.CodeValidation},
		{common.NewError(common.CodeInternal, "boom", errors.New("cause")), http.StatusInternalServerError, common.CodeInternal},
		{errors.New("unwrapped"), http.StatusInternalServerError, common.CodeInternal},
	}

	for _, tc := range cases {
		recorder := httptest.NewRecorder()
		Error(recorder, tc.err)
		if recorder.Code != tc.status {
			t.Fatalf("status for %v = %d, want %d", tc.err, recorder.Code, tc.status)
		}
		var body struct {
			Error struct {
				Code common.Code `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Error.Code != tc.code {
			t.Fatalf("code for %v = %s, want %s", tc.err, body.Error.Code, tc.code)
		}
	}
}

func TestErrorKeepsConflictDistinctFromFailure(t *testing.T) {
	recorder := httptest.NewRecorder()
	Error(recorder, common.NewError(common.CodeConflict, "already applied to this internship", nil))
	if recorder.Code == http.StatusInternalServerError {
		t.Fatal("a duplicate submit must not look like a server failure")
	}
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", recorder.Code)
	}
}
