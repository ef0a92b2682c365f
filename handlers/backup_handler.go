package handlers

import (
	"log"
	"net/http"

	"ricemill/utils"
)

type BackupHandler struct {
	PostgresURL string
	BackupDir   string
}

type backupResponse struct {
	Success bool   `json:"success"`
	File    string `json:"file"`
	URL     string `json:"url,omitempty"`
}

// Backup dumps the database to the backup directory and uploads the
// dump to R2 when configured.
func (h *BackupHandler) Backup(w http.ResponseWriter, r *http.Request) {
	path, url, err := utils.BackupDatabase(h.PostgresURL, h.BackupDir)
	if err != nil {
		log.Printf("Backup error: %v", err)
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	log.Printf("Backup created: %s", path)
	writeJSON(w, http.StatusOK, backupResponse{Success: true, File: path, URL: url})
}
