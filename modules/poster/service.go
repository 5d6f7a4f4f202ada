package poster

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"marketing-poster-server/modules/common/gemini"
	"marketing-poster-server/modules/common/middleware"
	"marketing-poster-server/modules/common/model"
	"marketing-poster-server/modules/common/utils"
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
		logger: logger.With().Str("module", "poster").Logger(),
	}
}

// Generate - product fields + product image -> PNG poster.
// Never returns nil; every failure is folded into the Result.
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) *Result {
	log := s.logger.With().Str("request_id", middleware.RequestIDFromContext(ctx)).Logger()

	productImage, err := utils.DecodeBase64Image(req.ProductImageBase64.String())
	if err != nil {
		log.Warn().Err(err).Msg("❌ [Poster] product image rejected")
		return failed(model.FailureInput, fmt.Sprintf("Error: invalid product image: %v", err))
	}

	log.Info().
		Str("model", s.model).
		Str("product", req.ProductName.String()).
		Str("image_type", productImage.MIMEType).
		Int("width", productImage.Width).
		Int("height", productImage.Height).
		Msg("🎨 [Poster] generating")

	parts := []*genai.Part{
		genai.NewPartFromText(BuildPrompt(req.ProductInfo)),
		genai.NewPartFromBytes(productImage.Data, productImage.MIMEType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := s.models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		log.Error().Err(err).Msg("❌ [Poster] Gemini API error")
		return failed(model.FailureUpstream, fmt.Sprintf("Error: generation request failed: %v", err))
	}

	blob, ok := gemini.FirstImage(resp)
	if !ok {
		log.Warn().Msg("⚠️ [Poster] response carried no image part")
		return failed(model.FailureEmpty, MessageNoImage)
	}

	png, err := utils.ReencodePNG(blob.Data)
	if err != nil {
		log.Error().Err(err).Str("mime_type", blob.MIMEType).Msg("❌ [Poster] re-encoding failed")
		return failed(model.FailureUpstream, fmt.Sprintf("Error: %v", err))
	}

	log.Info().Int("bytes", len(png)).Msg("✅ [Poster] generated")
	return succeeded(png)
}
