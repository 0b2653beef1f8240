package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/koinonia-backend/internal/services"
	"github.com/yungbote/koinonia-backend/internal/types"
)

type GeneratePathRequest struct {
	Organs []string `json:"organs"`
	Level  string   `json:"level"`
	Name   string   `json:"name"`
}

type SyllabusHandler struct {
	syllabusService services.SyllabusService
}

func NewSyllabusHandler(syllabusService services.SyllabusService) *SyllabusHandler {
	return &SyllabusHandler{syllabusService: syllabusService}
}

// GeneratePath handles POST /api/syllabus/paths. Unknown organ codes are
// tolerated by the service; an empty organ list or an unknown level is a
// client error.
func (h *SyllabusHandler) GeneratePath(c *gin.Context) {
	var req GeneratePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if len(req.Organs) == 0 {
		RespondError(c, http.StatusBadRequest, "organs_required", errors.New("organs must be a non-empty list"))
		return
	}
	if !types.ValidLevel(req.Level) {
		RespondError(c, http.StatusBadRequest, "invalid_level", fmt.Errorf("unknown level %q", req.Level))
		return
	}

	result, err := h.syllabusService.GeneratePath(c.Request.Context(), nil, req.Organs, req.Level, req.Name)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "generate_failed", err)
		return
	}
	RespondCreated(c, result)
}

// GetPath handles GET /api/syllabus/paths/:pathID.
func (h *SyllabusHandler) GetPath(c *gin.Context) {
	pathID := c.Param("pathID")
	path, err := h.syllabusService.GetPath(c.Request.Context(), nil, pathID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "lookup_failed", err)
		return
	}
	if path == nil {
		RespondError(c, http.StatusNotFound, "path_not_found", fmt.Errorf("no path with id %q", pathID))
		return
	}
	RespondOK(c, path)
}
