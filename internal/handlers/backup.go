package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/backup"
)

// exportBackup streams the full-dataset snapshot as a downloadable file
func (r *Router) exportBackup(w http.ResponseWriter, req *http.Request) {
	snap, err := r.backup.Export(time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	filename := fmt.Sprintf("inventory-backup-%s.json", snap.ExportedAt.Format("20060102-150405"))
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	respondJSON(w, http.StatusOK, snap)
}

// importBackup reinstates a snapshot. The restore is a destructive overwrite
// and is not atomic; the report tells the caller how far it got.
func (r *Router) importBackup(w http.ResponseWriter, req *http.Request) {
	raw, err := io.ReadAll(req.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Could not read request body")
		return
	}

	snap, err := backup.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := r.backup.Import(snap)
	if err != nil {
		// partial-batch failure: no rollback, report what was written
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":  err.Error(),
			"report": report,
		})
		return
	}
	respondJSON(w, http.StatusOK, report)
}
