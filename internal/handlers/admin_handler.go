package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"reelstreak/internal/service"
)

// AdminHandler serves the admin-only backup endpoints
type AdminHandler struct {
	backupService *service.BackupService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(backupService *service.BackupService) *AdminHandler {
	return &AdminHandler{backupService: backupService}
}

// ExportBackup streams a full database backup as a JSON download
func (h *AdminHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("reelstreak_backup_%s.json", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.backupService.ExportToWriter(w); err != nil {
		// Headers are already written; all we can do is log.
		log.Printf("Backup export failed: %v", err)
	}
}

// ImportBackup restores a database backup from an uploaded JSON file
func (h *AdminHandler) ImportBackup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	file, _, err := r.FormFile("backup")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing backup file", "", err)
		return
	}
	defer file.Close()

	if err := h.backupService.ImportFromReader(file); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Backup import failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}
