package poster

import "marketing-poster-server/modules/common/model"

const (
	MessageSuccess = "Poster generated successfully"
	MessageNoImage = "No image generated in response"
)

// GenerateRequest - POST /generate-poster body
type GenerateRequest struct {
	model.ProductInfo
	ProductImageBase64 model.Text `json:"product_image_base64"`
}

// GenerateResponse - success envelope
type GenerateResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	PosterBase64 string `json:"poster_base64"`
}

// FailureResponse - failure envelope, poster_bytes is always null
type FailureResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	PosterBytes *string `json:"poster_bytes"`
}

// Result - outcome of one poster generation.
// Build it with succeeded/failed only: PosterPNG is set iff Success.
type Result struct {
	Success   bool
	Message   string
	PosterPNG []byte
	Failure   model.FailureKind
}

func succeeded(png []byte) *Result {
	return &Result{Success: true, Message: MessageSuccess, PosterPNG: png}
}

func failed(kind model.FailureKind, message string) *Result {
	return &Result{Success: false, Message: message, Failure: kind}
}
