package caption

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"marketing-poster-server/modules/common/gemini"
	"marketing-poster-server/modules/common/middleware"
	"marketing-poster-server/modules/common/model"
)

type Service struct {
	models gemini.ContentGenerator
	model  string
	logger zerolog.Logger
}

func NewService(models gemini.ContentGenerator, modelName string, logger zerolog.Logger) *Service {
	return &Service{
		models: models,
		model:  modelName,
		logger: logger.With().Str("module", "caption").Logger(),
	}
}

// Generate - product fields -> trimmed caption text. Never returns nil.
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) *Result {
	log := s.logger.With().Str("request_id", middleware.RequestIDFromContext(ctx)).Logger()

	log.Info().
		Str("model", s.model).
		Str("product", req.ProductName.String()).
		Msg("✍️ [Caption] generating")

	contents := []*genai.Content{
		genai.NewContentFromText(BuildPrompt(req.ProductInfo), genai.RoleUser),
	}

	resp, err := s.models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		Temperature: floatPtr(0.8),
	})
	if err != nil {
		log.Error().Err(err).Msg("❌ [Caption] Gemini API error")
		return failed(model.FailureUpstream, fmt.Sprintf("Error: generation request failed: %v", err))
	}

	text, ok := gemini.FirstText(resp)
	if !ok {
		log.Warn().Msg("⚠️ [Caption] response carried no text part")
		return failed(model.FailureEmpty, MessageNoCaption)
	}

	log.Info().Int("chars", len(text)).Msg("✅ [Caption] generated")
	return succeeded(text)
}

func floatPtr(f float64) *float32 {
	f32 := float32(f)
	return &f32
}
