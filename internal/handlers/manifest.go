package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/koinonia-backend/internal/services"
)

type ManifestHandler struct {
	exportService services.ExportService
	seedDir       string
}

func NewManifestHandler(exportService services.ExportService, seedDir string) *ManifestHandler {
	return &ManifestHandler{exportService: exportService, seedDir: seedDir}
}

// GetManifest handles GET /api/manifest.
func (h *ManifestHandler) GetManifest(c *gin.Context) {
	manifest, err := h.exportService.BuildManifest(h.seedDir)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "manifest_failed", err)
		return
	}
	RespondOK(c, manifest)
}
