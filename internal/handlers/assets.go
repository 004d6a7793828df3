package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/inventory"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/models"
)

func (r *Router) listAssets(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.svc.ListAssets())
}

func (r *Router) getAsset(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	asset, err := r.svc.GetAsset(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Asset not found")
		return
	}
	respondJSON(w, http.StatusOK, asset)
}

func (r *Router) createAsset(w http.ResponseWriter, req *http.Request) {
	var asset models.Asset
	if err := json.NewDecoder(req.Body).Decode(&asset); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := r.svc.CreateAsset(&asset); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, asset)
}

func (r *Router) updateAsset(w http.ResponseWriter, req *http.Request) {
	var asset models.Asset
	if err := json.NewDecoder(req.Body).Decode(&asset); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	asset.ID = mux.Vars(req)["id"]
	if err := r.svc.UpdateAsset(&asset); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, asset)
}

func (r *Router) deleteAsset(w http.ResponseWriter, req *http.Request) {
	if err := r.svc.DeleteAsset(mux.Vars(req)["id"]); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// nextAssetCode suggests the next identity code for a group
func (r *Router) nextAssetCode(w http.ResponseWriter, req *http.Request) {
	group := req.URL.Query().Get("group")
	code, err := r.svc.NextAssetCode(group)
	if err != nil {
		respondError(w, http.StatusNotFound, "Unknown asset group")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"code": code})
}

// assetDepreciation returns the straight-line depreciation figures of one asset
func (r *Router) assetDepreciation(w http.ResponseWriter, req *http.Request) {
	asset, err := r.svc.GetAsset(mux.Vars(req)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Asset not found")
		return
	}
	respondJSON(w, http.StatusOK, r.svc.Depreciation(asset, time.Now()))
}

// respondServiceError maps service-layer errors onto HTTP statuses
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inventory.ErrDuplicateCode), errors.Is(err, inventory.ErrDuplicateName):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, inventory.ErrBadStatus), errors.Is(err, inventory.ErrBadTransition):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, inventory.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
