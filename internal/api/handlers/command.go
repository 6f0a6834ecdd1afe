package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/moshiurrahman/portfolio-api/internal/api"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
)

type CommandService interface {
	Answer(ctx context.Context, command string, mode domain.Mode) (*domain.Command, error)
	Record(ctx context.Context, command, response string) (*domain.Command, error)
	History(ctx context.Context) ([]*domain.Command, error)
}

type CommandHandler struct {
	svc CommandService
}

func NewCommandHandler(svc CommandService) *CommandHandler {
	return &CommandHandler{svc: svc}
}

type CommandRequest struct {
	Command string `json:"command"`
	Mode    string `json:"mode"`
}

type CommandResponse struct {
	ID        string `json:"id"`
	Command   string `json:"command"`
	Response  string `json:"response"`
	CreatedAt string `json:"created_at"`
}

func commandToResponse(c *domain.Command) *CommandResponse {
	return &CommandResponse{
		ID:        c.ID,
		Command:   c.Command,
		Response:  c.Response,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func (h *CommandHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		// mode is optional on this endpoint. missing or unknown falls back
		// to the general persona, matching the chat widget's behavior.
		mode = domain.ModeGeneral
	}

	entry, err := h.svc.Answer(r.Context(), req.Command, mode)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, commandToResponse(entry))
}

type RecordCommandRequest struct {
	Command  string `json:"command"`
	Response string `json:"response"`
}

func (h *CommandHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Record(r.Context(), req.Command, req.Response)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusCreated, commandToResponse(entry))
}

func (h *CommandHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.History(r.Context())
	if err != nil {
		api.HandleError(w, err)
		return
	}

	items := make([]*CommandResponse, 0, len(entries))
	for _, c := range entries {
		items = append(items, commandToResponse(c))
	}
	api.Success(w, http.StatusOK, items)
}
