package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/models"
)

// ---- Dependencies ----

func (r *Router) listDependencies(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.svc.ListDependencies())
}

func (r *Router) getDependency(w http.ResponseWriter, req *http.Request) {
	dep, err := r.svc.GetDependency(mux.Vars(req)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Dependency not found")
		return
	}
	respondJSON(w, http.StatusOK, dep)
}

func (r *Router) saveDependency(w http.ResponseWriter, req *http.Request) {
	var dep models.Dependency
	if err := json.NewDecoder(req.Body).Decode(&dep); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := r.svc.SaveDependency(&dep); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dep)
}

func (r *Router) updateDependency(w http.ResponseWriter, req *http.Request) {
	var dep models.Dependency
	if err := json.NewDecoder(req.Body).Decode(&dep); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	dep.ID = mux.Vars(req)["id"]
	if err := r.svc.SaveDependency(&dep); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dep)
}

func (r *Router) deleteDependency(w http.ResponseWriter, req *http.Request) {
	if err := r.svc.DeleteDependency(mux.Vars(req)["id"]); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---- Custodians ----

func (r *Router) listCustodians(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.svc.ListCustodians())
}

func (r *Router) getCustodian(w http.ResponseWriter, req *http.Request) {
	c, err := r.svc.GetCustodian(mux.Vars(req)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Custodian not found")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (r *Router) saveCustodian(w http.ResponseWriter, req *http.Request) {
	var c models.Custodian
	if err := json.NewDecoder(req.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := r.svc.SaveCustodian(&c); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (r *Router) updateCustodian(w http.ResponseWriter, req *http.Request) {
	var c models.Custodian
	if err := json.NewDecoder(req.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	c.ID = mux.Vars(req)["id"]
	if err := r.svc.SaveCustodian(&c); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (r *Router) deleteCustodian(w http.ResponseWriter, req *http.Request) {
	if err := r.svc.DeleteCustodian(mux.Vars(req)["id"]); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---- Brands ----

func (r *Router) listBrands(w http.ResponseWriter, req *http.Request) {
	brands, err := r.svc.ListBrands()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, brands)
}

func (r *Router) addBrand(w http.ResponseWriter, req *http.Request) {
	var b models.Brand
	if err := json.NewDecoder(req.Body).Decode(&b); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := r.svc.AddBrand(b); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, b)
}

func (r *Router) removeBrand(w http.ResponseWriter, req *http.Request) {
	if err := r.svc.RemoveBrand(mux.Vars(req)["name"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---- Asset-name catalog ----

func (r *Router) listAssetNames(w http.ResponseWriter, req *http.Request) {
	names, err := r.svc.ListAssetNames()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, names)
}

func (r *Router) addAssetName(w http.ResponseWriter, req *http.Request) {
	var entry models.AssetNameEntry
	if err := json.NewDecoder(req.Body).Decode(&entry); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := r.svc.AddAssetName(entry); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (r *Router) removeAssetName(w http.ResponseWriter, req *http.Request) {
	if err := r.svc.RemoveAssetName(mux.Vars(req)["name"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---- Asset groups ----

func (r *Router) listGroups(w http.ResponseWriter, req *http.Request) {
	groups, err := r.svc.ListGroups()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, groups)
}

func (r *Router) saveGroup(w http.ResponseWriter, req *http.Request) {
	var g models.AssetGroup
	if err := json.NewDecoder(req.Body).Decode(&g); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := r.svc.SaveGroup(g); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, g)
}

func (r *Router) removeGroup(w http.ResponseWriter, req *http.Request) {
	if err := r.svc.RemoveGroup(mux.Vars(req)["code"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---- Company config ----

func (r *Router) getCompanyConfig(w http.ResponseWriter, req *http.Request) {
	cfg, err := r.svc.GetCompanyConfig()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

func (r *Router) saveCompanyConfig(w http.ResponseWriter, req *http.Request) {
	var cfg models.CompanyConfig
	if err := json.NewDecoder(req.Body).Decode(&cfg); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := r.svc.SaveCompanyConfig(&cfg); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}
