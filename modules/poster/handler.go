package poster

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
	"marketing-poster-server/modules/common/utils"
)

const route = "poster"

// Generator is what the handler needs from the poster service.
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
		logger:    logger.With().Str("module", "poster").Logger(),
	}
}

// RegisterRoutes wires the poster endpoint.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/generate-poster", h.HandleGenerate).Methods(http.MethodPost)
}

// HandleGenerate - POST /generate-poster
// 200 with poster_base64 on success, 500 with poster_bytes: null otherwise.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn().Err(err).Msg("❌ [Poster] invalid request body")
		h.write(w, http.StatusBadRequest, FailureResponse{
			Success: false,
			Message: "Error: invalid request body: " + err.Error(),
		})
		return
	}

	result := h.generator.Generate(r.Context(), &req)

	if err := h.stats.Record(r.Context(), route, result.Success); err != nil {
		h.logger.Warn().Err(err).Msg("⚠️ [Poster] failed to record outcome")
	}

	if !result.Success {
		h.write(w, http.StatusInternalServerError, FailureResponse{
			Success: false,
			Message: result.Message,
		})
		return
	}

	h.write(w, http.StatusOK, GenerateResponse{
		Success:      true,
		Message:      result.Message,
		PosterBase64: utils.ConvertImageToBase64(result.PosterPNG),
	})
}

func (h *Handler) write(w http.ResponseWriter, status int, body any) {
	if err := response.JSON(w, status, body); err != nil {
		h.logger.Error().Err(err).Msg("❌ [Poster] failed to write response")
	}
}
