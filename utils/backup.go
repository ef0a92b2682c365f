package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BackupDatabase dumps the Postgres database with pg_dump into the
// backup directory and, when R2 is configured, uploads the dump.
// Returns the local path and the upload URL (empty when not uploaded).
func BackupDatabase(postgresURL, backupDir string) (string, string, error) {
	if postgresURL == "" {
		return "", "", fmt.Errorf("POSTGRES_URL not set, nothing to back up")
	}
	if backupDir == "" {
		home, _ := os.UserHomeDir()
		backupDir = filepath.Join(home, "PurchaseSlipBackups")
	}
	if err := os.MkdirAll(backupDir, os.ModePerm); err != nil {
		return "", "", err
	}

	timestamp := strings.ReplaceAll(time.Now().UTC().Format("2006-01-02T15-04-05"), ":", "-")
	backupPath := filepath.Join(backupDir, fmt.Sprintf("purchase_slips_backup_%s.sql", timestamp))

	cmd := exec.Command("pg_dump", "--dbname", postgresURL, "--file", backupPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", "", fmt.Errorf("pg_dump failed: %v: %s", err, string(out))
	}

	if !R2Configured() {
		return backupPath, "", nil
	}

	dump, err := os.ReadFile(backupPath)
	if err != nil {
		return backupPath, "", err
	}
	fileURL, err := UploadToR2(dump, filepath.Base(backupPath), "application/sql")
	if err != nil {
		return backupPath, "", err
	}
	return backupPath, fileURL, nil
}
