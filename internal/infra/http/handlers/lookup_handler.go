package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/permitwatch/lead-portal/internal/entity"
)

// LookupHandler serves one reference collection. The router mounts one
// instance per kind; behavior differs only in resource path and messages.
type LookupHandler struct {
	Repo entity.LookupRepositoryInterface
	Kind entity.LookupKind
}

func NewLookupHandler(repo entity.LookupRepositoryInterface, kind entity.LookupKind) *LookupHandler {
	return &LookupHandler{Repo: repo, Kind: kind}
}

// Mount registers the collection routes on the router. Lookup items have no
// update operation.
func (h *LookupHandler) Mount(r chi.Router) {
	path := "/" + h.Kind.Path
	r.Get(path, h.List)
	r.Post(path, h.Create)
	r.Delete(path+"/{id}", h.Delete)
}

func (h *LookupHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), h.Kind)
	if err != nil {
		log.Printf("[LOOKUP] list %s failed: %v", h.Kind.Key, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type createLookupRequest struct {
	Name string `json:"name"`
}

func (h *LookupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	now := time.Now().UTC()
	item := &entity.LookupItem{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := h.Repo.Create(r.Context(), h.Kind, item)
	if errors.Is(err, entity.ErrDuplicateName) {
		writeError(w, http.StatusConflict, h.Kind.Label+" already exists")
		return
	}
	if err != nil {
		log.Printf("[LOOKUP] create %s failed: %v", h.Kind.Key, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *LookupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Repo.Delete(r.Context(), h.Kind, id)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, h.Kind.Label+" not found")
		return
	}
	if err != nil {
		log.Printf("[LOOKUP] delete %s/%s failed: %v", h.Kind.Key, id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": h.Kind.Label + " deleted successfully"})
}
