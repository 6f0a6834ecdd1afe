package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/pagination"
	"github.com/moshiurrahman/portfolio-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Create(ctx context.Context, input service.CreateChatInput) (*domain.ChatSession, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatSession), args.Error(1)
}

func (m *MockChatService) Append(ctx context.Context, input service.AppendMessageInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockChatService) Get(ctx context.Context, id string) (*domain.ChatSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatSession), args.Error(1)
}

func (m *MockChatService) List(ctx context.Context, input service.ListChatsInput) (*pagination.PageResult[domain.ChatSummary], error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.PageResult[domain.ChatSummary]), args.Error(1)
}

func (m *MockChatService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChatService) BulkDelete(ctx context.Context, ids []string) (*service.BulkDeleteResult, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BulkDeleteResult), args.Error(1)
}

func newTestSession() *domain.ChatSession {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.ChatSession{
		ID:    "6ba7b810-9dad-11d1-80b4-00c04fd430c1",
		Title: "Greeting Chat",
		Mode:  domain.ModeGeneral,
		Messages: []domain.Message{
			{Sender: domain.SenderUser, Text: "hello", Timestamp: now},
			{Sender: domain.SenderAssistant, Text: "hi there", Timestamp: now},
		},
		CreatedAt:      now,
		UpdatedAt:      now,
		LastAccessedAt: now,
	}
}

func TestFormatTime(t *testing.T) {
	utc := time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-29T06:00:00Z", formatTime(utc))

	// pgx decodes timestamptz into the server's local zone; the rendered
	// instant must not shift with it
	dhaka := time.FixedZone("BST", 6*60*60)
	assert.Equal(t, "2026-08-29T06:00:00Z", formatTime(utc.In(dhaka)))
}

func chatRouter(h *ChatHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/chats", h.Create)
	r.Get("/chats", h.List)
	r.Delete("/chats", h.BulkDelete)
	r.Get("/chats/{id}", h.Get)
	r.Post("/chats/{id}/messages", h.Append)
	r.Delete("/chats/{id}", h.Delete)
	return r
}

func TestChatHandler_Create(t *testing.T) {
	t.Run("returns 201 with the created session", func(t *testing.T) {
		svc := new(MockChatService)
		h := NewChatHandler(svc)
		session := newTestSession()

		svc.On("Create", mock.Anything, service.CreateChatInput{Message: "hello", Mode: "general"}).
			Return(session, nil)

		body, _ := json.Marshal(CreateChatRequest{Message: "hello", Mode: "general"})
		req := httptest.NewRequest(http.MethodPost, "/chats", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		chatRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Data ChatResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, session.ID, resp.Data.ID)
		assert.Len(t, resp.Data.Messages, 2)
		svc.AssertExpectations(t)
	})

	t.Run("returns 400 on invalid body", func(t *testing.T) {
		h := NewChatHandler(new(MockChatService))

		req := httptest.NewRequest(http.MethodPost, "/chats", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()

		chatRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation errors map to 400", func(t *testing.T) {
		svc := new(MockChatService)
		h := NewChatHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrMessageTooLong)

		body, _ := json.Marshal(CreateChatRequest{Message: "x", Mode: "general"})
		req := httptest.NewRequest(http.MethodPost, "/chats", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		chatRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Message, "message too long")
	})

	t.Run("rate limit maps to 429", func(t *testing.T) {
		svc := new(MockChatService)
		h := NewChatHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrModelRateLimited)

		body, _ := json.Marshal(CreateChatRequest{Message: "x", Mode: "general"})
		req := httptest.NewRequest(http.MethodPost, "/chats", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		chatRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("upstream failure maps to 500", func(t *testing.T) {
		svc := new(MockChatService)
		h := NewChatHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrModelUnavailable)

		body, _ := json.Marshal(CreateChatRequest{Message: "x", Mode: "general"})
		req := httptest.NewRequest(http.MethodPost, "/chats", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		chatRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestChatHandler_Get(t *testing.T) {
	t.Run("unknown session maps to 404", func(t *testing.T) {
		svc := new(MockChatService)
		h := NewChatHandler(svc)

		svc.On("Get", mock.Anything, "6ba7b810-9dad-11d1-80b4-00c04fd430c9").
			Return(nil, domain.ErrChatNotFound)

		req := httptest.NewRequest(http.MethodGet, "/chats/6ba7b810-9dad-11d1-80b4-00c04fd430c9", nil)
		rec := httptest.NewRecorder()

		chatRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestChatHandler_Append(t *testing.T) {
	t.Run("returns the assistant reply", func(t *testing.T) {
		svc := new(MockChatService)
		h := NewChatHandler(svc)
		id := "6ba7b810-9dad-11d1-80b4-00c04fd430c1"

		svc.On("Append", mock.Anything, service.AppendMessageInput{ChatID: id, Message: "next", Mode: "general"}).
			Return("assistant reply", nil)

		body, _ := json.Marshal(AppendMessageRequest{Message: "next", Mode: "general"})
		req := httptest.NewRequest(http.MethodPost, "/chats/"+id+"/messages", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		chatRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data AppendMessageResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "assistant reply", resp.Data.Response)
	})
}

func TestChatHandler_List(t *testing.T) {
	t.Run("passes search and paging through", func(t *testing.T) {
		svc := new(MockChatService)
		h := NewChatHandler(svc)

		svc.On("List", mock.Anything, service.ListChatsInput{Search: "greeting", Limit: 5, Skip: 10}).
			Return(&pagination.PageResult[domain.ChatSummary]{
				Items: []domain.ChatSummary{newTestSession().Summary()},
				Total: 42,
				Limit: 5,
				Skip:  10,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/chats?search=greeting&limit=5&skip=10", nil)
		rec := httptest.NewRecorder()

		chatRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data ChatListResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.Data.Total)
		require.Len(t, resp.Data.Items, 1)
		assert.Equal(t, "Greeting Chat", resp.Data.Items[0].Title)
	})
}

func TestChatHandler_BulkDelete(t *testing.T) {
	t.Run("reports deleted count and invalid ids", func(t *testing.T) {
		svc := new(MockChatService)
		h := NewChatHandler(svc)

		svc.On("BulkDelete", mock.Anything, []string{"a", "b"}).
			Return(&service.BulkDeleteResult{Deleted: 1, InvalidIDs: []string{"a"}}, nil)

		body, _ := json.Marshal(BulkDeleteRequest{ChatIDs: []string{"a", "b"}})
		req := httptest.NewRequest(http.MethodDelete, "/chats", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		chatRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data BulkDeleteResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.Data.Deleted)
		assert.Equal(t, []string{"a"}, resp.Data.InvalidIDs)
	})
}
