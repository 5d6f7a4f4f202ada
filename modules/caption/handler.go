package caption

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"marketing-poster-server/modules/common/response"
	"marketing-poster-server/modules/common/stats"
)

const route = "caption"

// Generator is what the handler needs from the caption service.
type Generator interface {
	Generate(ctx context.Context, req *GenerateRequest) *Result
}

type Handler struct {
	generator Generator
	stats     stats.Recorder
	logger    zerolog.Logger
}

func NewHandler(generator Generator, recorder stats.Recorder, logger zerolog.Logger) *Handler {
	return &Handler{
		generator: generator,
		stats:     recorder,
		logger:    logger.With().Str("module", "caption").Logger(),
	}
}

// RegisterRoutes wires the caption endpoint.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/generate-caption", h.HandleGenerate).Methods(http.MethodPost)
}

// HandleGenerate - POST /generate-caption
// Same status contract as the poster route: 200 on success, 500 on failure.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn().Err(err).Msg("❌ [Caption] invalid request body")
		h.write(w, http.StatusBadRequest, GenerateResponse{
			Success: false,
			Message: "Error: invalid request body: " + err.Error(),
		})
		return
	}

	result := h.generator.Generate(r.Context(), &req)

	if err := h.stats.Record(r.Context(), route, result.Success); err != nil {
		h.logger.Warn().Err(err).Msg("⚠️ [Caption] failed to record outcome")
	}

	if !result.Success {
		h.write(w, http.StatusInternalServerError, GenerateResponse{
			Success: false,
			Message: result.Message,
		})
		return
	}

	caption := result.Caption
	h.write(w, http.StatusOK, GenerateResponse{
		Success: true,
		Message: result.Message,
		Caption: &caption,
	})
}

func (h *Handler) write(w http.ResponseWriter, status int, body GenerateResponse) {
	if err := response.JSON(w, status, body); err != nil {
		h.logger.Error().Err(err).Msg("❌ [Caption] failed to write response")
	}
}
