package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"internbridge/internal/common"
	"internbridge/internal/http/response"
)

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.Error(w, common.NewValidationError("invalid request body", map[string]string{"body": "must be valid json"}))
		return false
	}
	return true
}

// pathID extracts the uuid segment following prefix, e.g. the "{id}" in
// /applications/{id}/status.
func pathID(path, prefix string) (common.UUID, error) {
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.Trim(rest, "/")
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		rest = rest[:idx]
	}
	id, err := common.ParseUUID(rest)
	if err != nil {
		return common.NilUUID, common.NewValidationError("invalid id", map[string]string{"id": "invalid uuid"})
	}
	return id, nil
}

func queryUUID(r *http.Request, key string) (common.UUID, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return common.NilUUID, common.NewValidationError(key+" is required", map[string]string{key: "required"})
	}
	id, err := common.ParseUUID(value)
	if err != nil {
		return common.NilUUID, common.NewValidationError("invalid "+key, map[string]string{key: "invalid uuid"})
	}
	return id, nil
}
