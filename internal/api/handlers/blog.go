package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/moshiurrahman/portfolio-api/internal/api"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/service"
)

type BlogService interface {
	Create(ctx context.Context, input service.CreateBlogInput) (*domain.Blog, error)
	Get(ctx context.Context, id string) (*domain.Blog, error)
	List(ctx context.Context) ([]domain.Blog, error)
	Update(ctx context.Context, input service.UpdateBlogInput) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
	ToggleLove(ctx context.Context, blogID, visitorID string) (*service.LoveResult, error)
	LoveCount(ctx context.Context, blogID string) (int, error)
	LoveStatus(ctx context.Context, blogID, visitorID string) (bool, error)
}

type BlogHandler struct {
	svc BlogService
}

func NewBlogHandler(svc BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

type BlogRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	Thumbnail string   `json:"thumbnail"`
	Category  string   `json:"category"`
}

type LoveRequest struct {
	UserID string `json:"userId"`
}

type BlogResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Category  string   `json:"category,omitempty"`
	Loves     int      `json:"loves"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type LoveResponse struct {
	Loved bool `json:"loved"`
	Count int  `json:"count"`
}

func blogToResponse(b *domain.Blog) *BlogResponse {
	return &BlogResponse{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Author:    b.Author,
		Tags:      b.Tags,
		Thumbnail: b.Thumbnail,
		Category:  b.Category,
		Loves:     len(b.Loves),
		CreatedAt: formatTime(b.CreatedAt),
		UpdatedAt: formatTime(b.UpdatedAt),
	}
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	blog, err := h.svc.Create(r.Context(), service.CreateBlogInput{
		Title:     req.Title,
		Content:   req.Content,
		Author:    req.Author,
		Tags:      req.Tags,
		Thumbnail: req.Thumbnail,
		Category:  req.Category,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusCreated, blogToResponse(blog))
}

func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	blog, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, blogToResponse(blog))
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.svc.List(r.Context())
	if err != nil {
		api.HandleError(w, err)
		return
	}

	items := make([]*BlogResponse, 0, len(blogs))
	for i := range blogs {
		items = append(items, blogToResponse(&blogs[i]))
	}

	api.Success(w, http.StatusOK, items)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req BlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	blog, err := h.svc.Update(r.Context(), service.UpdateBlogInput{
		ID:        chi.URLParam(r, "id"),
		Title:     req.Title,
		Content:   req.Content,
		Author:    req.Author,
		Tags:      req.Tags,
		Thumbnail: req.Thumbnail,
		Category:  req.Category,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, blogToResponse(blog))
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, map[string]string{"id": id})
}

func (h *BlogHandler) ToggleLove(w http.ResponseWriter, r *http.Request) {
	var req LoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.ToggleLove(r.Context(), chi.URLParam(r, "id"), req.UserID)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, LoveResponse{Loved: result.Loved, Count: result.Count})
}

func (h *BlogHandler) LoveCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.LoveCount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, map[string]int{"count": count})
}

func (h *BlogHandler) LoveStatus(w http.ResponseWriter, r *http.Request) {
	loved, err := h.svc.LoveStatus(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("userId"))
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, map[string]bool{"loved": loved})
}
