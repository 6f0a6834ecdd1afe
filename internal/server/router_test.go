package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moshiurrahman/portfolio-api/internal/api/handlers"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/pagination"
	"github.com/moshiurrahman/portfolio-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChatService satisfies handlers.ChatService with canned values.
type stubChatService struct{}

func (stubChatService) Create(ctx context.Context, input service.CreateChatInput) (*domain.ChatSession, error) {
	return &domain.ChatSession{ID: "id", Mode: domain.ModeGeneral}, nil
}

func (stubChatService) Append(ctx context.Context, input service.AppendMessageInput) (string, error) {
	return "reply", nil
}

func (stubChatService) Get(ctx context.Context, id string) (*domain.ChatSession, error) {
	return nil, domain.ErrChatNotFound
}

func (stubChatService) List(ctx context.Context, input service.ListChatsInput) (*pagination.PageResult[domain.ChatSummary], error) {
	return &pagination.PageResult[domain.ChatSummary]{Items: []domain.ChatSummary{}}, nil
}

func (stubChatService) Delete(ctx context.Context, id string) error {
	return nil
}

func (stubChatService) BulkDelete(ctx context.Context, ids []string) (*service.BulkDeleteResult, error) {
	return &service.BulkDeleteResult{}, nil
}

type stubTaxonomyStore struct{}

func (stubTaxonomyStore) CreateTag(ctx context.Context, tag *domain.Tag) error { return nil }
func (stubTaxonomyStore) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	return []*domain.Tag{}, nil
}
func (stubTaxonomyStore) CreateCategory(ctx context.Context, c *domain.Category) error { return nil }
func (stubTaxonomyStore) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return []*domain.Category{}, nil
}

func newTestRouter() http.Handler {
	return NewRouter(RouterConfig{
		AllowedOrigins:  []string{"*"},
		ChatHandler:     handlers.NewChatHandler(stubChatService{}),
		TaxonomyHandler: handlers.NewTaxonomyHandler(stubTaxonomyStore{}),
	})
}

func TestRouter_Health(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Data["status"])
}

func TestRouter_Root(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ChatRoutes(t *testing.T) {
	t.Run("list is wired", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/chats", nil)
		rec := httptest.NewRecorder()

		newTestRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get maps unknown to 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/chats/6ba7b810-9dad-11d1-80b4-00c04fd430c1", nil)
		rec := httptest.NewRecorder()

		newTestRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_RequestIDHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_BodyLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/chats", nil)
	req.ContentLength = 2 * 1024 * 1024
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
