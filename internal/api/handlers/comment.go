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

type CommentService interface {
	Create(ctx context.Context, input service.CreateCommentInput) (*domain.Comment, error)
	ListByBlog(ctx context.Context, blogID string) ([]*domain.Comment, error)
	ToggleLike(ctx context.Context, commentID, userID string) (*service.LikeStatus, error)
	Status(ctx context.Context, commentID, userID string) (*service.LikeStatus, error)
}

type CommentHandler struct {
	svc CommentService
}

func NewCommentHandler(svc CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

type CommentRequest struct {
	BlogID   string `json:"blogId"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

type CommentLikeRequest struct {
	CommentID string `json:"commentId"`
	UserID    string `json:"userId"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	BlogID    string `json:"blog_id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type LikeStatusResponse struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

func commentToResponse(c *domain.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		BlogID:    c.BlogID,
		Username:  c.Username,
		Content:   c.Content,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.svc.Create(r.Context(), service.CreateCommentInput{
		BlogID:   req.BlogID,
		Username: req.Username,
		Content:  req.Content,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusCreated, commentToResponse(comment))
}

func (h *CommentHandler) ListByBlog(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.ListByBlog(r.Context(), chi.URLParam(r, "blogId"))
	if err != nil {
		api.HandleError(w, err)
		return
	}

	items := make([]*CommentResponse, 0, len(comments))
	for _, c := range comments {
		items = append(items, commentToResponse(c))
	}
	api.Success(w, http.StatusOK, items)
}

func (h *CommentHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	var req CommentLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := h.svc.ToggleLike(r.Context(), req.CommentID, req.UserID)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, LikeStatusResponse{Liked: status.Liked, Count: status.Count})
}

func (h *CommentHandler) LikeCount(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Status(r.Context(), chi.URLParam(r, "commentId"), "")
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, map[string]int64{"count": status.Count})
}

func (h *CommentHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Status(r.Context(), chi.URLParam(r, "commentId"), r.URL.Query().Get("userId"))
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, LikeStatusResponse{Liked: status.Liked, Count: status.Count})
}
