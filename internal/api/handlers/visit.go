package handlers

import (
	"context"
	"net/http"

	"github.com/moshiurrahman/portfolio-api/internal/api"
	"github.com/moshiurrahman/portfolio-api/internal/api/middleware"
)

type VisitService interface {
	Record(ctx context.Context, ip, userAgent string) error
	MonthlyCount(ctx context.Context) (int64, error)
}

type VisitHandler struct {
	svc VisitService
}

func NewVisitHandler(svc VisitService) *VisitHandler {
	return &VisitHandler{svc: svc}
}

func (h *VisitHandler) Record(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Record(r.Context(), middleware.ClientIP(r), r.UserAgent()); err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

func (h *VisitHandler) MonthlyCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.MonthlyCount(r.Context())
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, map[string]int64{"count": count})
}
