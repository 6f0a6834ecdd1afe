package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/moshiurrahman/portfolio-api/internal/api"
	"github.com/moshiurrahman/portfolio-api/internal/api/handlers"
	"github.com/moshiurrahman/portfolio-api/internal/api/middleware"
)

type RouterConfig struct {
	AllowedOrigins  []string
	ChatHandler     *handlers.ChatHandler
	BlogHandler     *handlers.BlogHandler
	ReviewHandler   *handlers.ReviewHandler
	TaxonomyHandler *handlers.TaxonomyHandler
	CommentHandler  *handlers.CommentHandler
	VisitHandler    *handlers.VisitHandler
	CommandHandler  *handlers.CommandHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"name": "portfolio-api", "status": "ok"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/chats", func(r chi.Router) {
		r.Post("/", cfg.ChatHandler.Create)
		r.Get("/", cfg.ChatHandler.List)
		r.Delete("/", cfg.ChatHandler.BulkDelete)
		r.Get("/{id}", cfg.ChatHandler.Get)
		r.Post("/{id}/messages", cfg.ChatHandler.Append)
		r.Delete("/{id}", cfg.ChatHandler.Delete)
	})

	r.Route("/blogs", func(r chi.Router) {
		r.Post("/", cfg.BlogHandler.Create)
		r.Get("/", cfg.BlogHandler.List)
		r.Get("/{id}", cfg.BlogHandler.Get)
		r.Put("/{id}", cfg.BlogHandler.Update)
		r.Delete("/{id}", cfg.BlogHandler.Delete)

		r.Post("/{id}/love", cfg.BlogHandler.ToggleLove)
		r.Get("/{id}/love/count", cfg.BlogHandler.LoveCount)
		r.Get("/{id}/love/status", cfg.BlogHandler.LoveStatus)
	})

	r.Route("/comments", func(r chi.Router) {
		r.Post("/", cfg.CommentHandler.Create)
		r.Get("/{blogId}", cfg.CommentHandler.ListByBlog)
		r.Post("/like", cfg.CommentHandler.ToggleLike)
		r.Get("/like-count/{commentId}", cfg.CommentHandler.LikeCount)
		r.Get("/liked/{commentId}", cfg.CommentHandler.Status)
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Post("/", cfg.ReviewHandler.Create)
		r.Get("/", cfg.ReviewHandler.List)
		r.Get("/stats", cfg.ReviewHandler.Stats)
		r.Delete("/{id}", cfg.ReviewHandler.Delete)
	})

	r.Route("/tags", func(r chi.Router) {
		r.Post("/", cfg.TaxonomyHandler.CreateTag)
		r.Get("/", cfg.TaxonomyHandler.ListTags)
	})
	r.Route("/categories", func(r chi.Router) {
		r.Post("/", cfg.TaxonomyHandler.CreateCategory)
		r.Get("/", cfg.TaxonomyHandler.ListCategories)
	})

	r.Post("/visits", cfg.VisitHandler.Record)
	r.Get("/visitors/monthly", cfg.VisitHandler.MonthlyCount)

	r.Post("/ai-answer", cfg.CommandHandler.Answer)
	r.Post("/ai-command", cfg.CommandHandler.Record)
	r.Get("/ai-history", cfg.CommandHandler.History)

	return r
}
