package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/moshiurrahman/portfolio-api/internal/api"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/pagination"
	"github.com/moshiurrahman/portfolio-api/internal/service"
)

type ChatService interface {
	Create(ctx context.Context, input service.CreateChatInput) (*domain.ChatSession, error)
	Append(ctx context.Context, input service.AppendMessageInput) (string, error)
	Get(ctx context.Context, id string) (*domain.ChatSession, error)
	List(ctx context.Context, input service.ListChatsInput) (*pagination.PageResult[domain.ChatSummary], error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (*service.BulkDeleteResult, error)
}

type ChatHandler struct {
	svc ChatService
}

func NewChatHandler(svc ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type CreateChatRequest struct {
	Message string `json:"message"`
	Mode    string `json:"mode"`
}

type AppendMessageRequest struct {
	Message string `json:"message"`
	Mode    string `json:"mode"`
}

type BulkDeleteRequest struct {
	ChatIDs []string `json:"chatIds"`
}

type MessageResponse struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type ChatResponse struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Mode           string            `json:"mode"`
	Messages       []MessageResponse `json:"messages"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
	LastAccessedAt string            `json:"last_accessed_at"`
}

type ChatSummaryResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Mode           string `json:"mode"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
	LastAccessedAt string `json:"last_accessed_at"`
}

type ChatListResponse struct {
	Items []ChatSummaryResponse `json:"items"`
	Total int64                 `json:"total"`
	Limit int                   `json:"limit"`
	Skip  int                   `json:"skip"`
}

type AppendMessageResponse struct {
	Response string `json:"response"`
}

type BulkDeleteResponse struct {
	Deleted    int64    `json:"deleted"`
	InvalidIDs []string `json:"invalid_ids,omitempty"`
}

// formatTime renders timestamps in UTC regardless of the zone the driver
// decoded them into.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func chatToResponse(s *domain.ChatSession) *ChatResponse {
	messages := make([]MessageResponse, 0, len(s.Messages))
	for _, m := range s.Messages {
		messages = append(messages, MessageResponse{
			Sender:    string(m.Sender),
			Text:      m.Text,
			Timestamp: formatTime(m.Timestamp),
		})
	}
	return &ChatResponse{
		ID:             s.ID,
		Title:          s.Title,
		Mode:           string(s.Mode),
		Messages:       messages,
		CreatedAt:      formatTime(s.CreatedAt),
		UpdatedAt:      formatTime(s.UpdatedAt),
		LastAccessedAt: formatTime(s.LastAccessedAt),
	}
}

func summaryToResponse(s domain.ChatSummary) ChatSummaryResponse {
	return ChatSummaryResponse{
		ID:             s.ID,
		Title:          s.Title,
		Mode:           string(s.Mode),
		CreatedAt:      formatTime(s.CreatedAt),
		UpdatedAt:      formatTime(s.UpdatedAt),
		LastAccessedAt: formatTime(s.LastAccessedAt),
	}
}

func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.svc.Create(r.Context(), service.CreateChatInput{
		Message: req.Message,
		Mode:    req.Mode,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusCreated, chatToResponse(session))
}

func (h *ChatHandler) Append(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req AppendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.svc.Append(r.Context(), service.AppendMessageInput{
		ChatID:  id,
		Message: req.Message,
		Mode:    req.Mode,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, AppendMessageResponse{Response: reply})
}

func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := h.svc.Get(r.Context(), id)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, chatToResponse(session))
}

func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, _ := strconv.Atoi(query.Get("limit"))
	skip, _ := strconv.Atoi(query.Get("skip"))

	result, err := h.svc.List(r.Context(), service.ListChatsInput{
		Search: query.Get("search"),
		Limit:  limit,
		Skip:   skip,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	items := make([]ChatSummaryResponse, 0, len(result.Items))
	for _, s := range result.Items {
		items = append(items, summaryToResponse(s))
	}

	api.Success(w, http.StatusOK, ChatListResponse{
		Items: items,
		Total: result.Total,
		Limit: result.Limit,
		Skip:  result.Skip,
	})
}

func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, map[string]string{"id": id})
}

func (h *ChatHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.BulkDelete(r.Context(), req.ChatIDs)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, BulkDeleteResponse{
		Deleted:    result.Deleted,
		InvalidIDs: result.InvalidIDs,
	})
}
