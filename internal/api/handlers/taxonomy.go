package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/moshiurrahman/portfolio-api/internal/api"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/service"
)

// TaxonomyStore is thin enough that the handler talks to the repository
// directly, without a service layer.
type TaxonomyStore interface {
	CreateTag(ctx context.Context, t *domain.Tag) error
	ListTags(ctx context.Context) ([]*domain.Tag, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

type TaxonomyHandler struct {
	store   TaxonomyStore
	uuidGen service.UUIDGenerator
	clock   service.Clock
}

func NewTaxonomyHandler(store TaxonomyStore) *TaxonomyHandler {
	return &TaxonomyHandler{store: store, uuidGen: &service.DefaultUUIDGenerator{}, clock: service.UTCClock{}}
}

type NameRequest struct {
	Name string `json:"name"`
}

type NameResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

func (h *TaxonomyHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	name, ok := decodeName(w, r)
	if !ok {
		return
	}

	tag := &domain.Tag{ID: h.uuidGen.NewString(), Name: name, CreatedAt: h.clock.Now()}
	if err := h.store.CreateTag(r.Context(), tag); err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusCreated, NameResponse{
		ID:        tag.ID,
		Name:      tag.Name,
		CreatedAt: formatTime(tag.CreatedAt),
	})
}

func (h *TaxonomyHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.store.ListTags(r.Context())
	if err != nil {
		api.HandleError(w, err)
		return
	}

	items := make([]NameResponse, 0, len(tags))
	for _, t := range tags {
		items = append(items, NameResponse{ID: t.ID, Name: t.Name, CreatedAt: formatTime(t.CreatedAt)})
	}
	api.Success(w, http.StatusOK, items)
}

func (h *TaxonomyHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	name, ok := decodeName(w, r)
	if !ok {
		return
	}

	category := &domain.Category{ID: h.uuidGen.NewString(), Name: name, CreatedAt: h.clock.Now()}
	if err := h.store.CreateCategory(r.Context(), category); err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusCreated, NameResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: formatTime(category.CreatedAt),
	})
}

func (h *TaxonomyHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		api.HandleError(w, err)
		return
	}

	items := make([]NameResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, NameResponse{ID: c.ID, Name: c.Name, CreatedAt: formatTime(c.CreatedAt)})
	}
	api.Success(w, http.StatusOK, items)
}

func decodeName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return "", false
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		api.Error(w, http.StatusBadRequest, "name is required")
		return "", false
	}

	return name, true
}
