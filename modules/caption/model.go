package caption

import "marketing-poster-server/modules/common/model"

const (
	MessageSuccess   = "Caption generated successfully"
	MessageNoCaption = "No caption generated in response"
)

// GenerateRequest - POST /generate-caption body
type GenerateRequest struct {
	model.ProductInfo
}

// GenerateResponse - envelope; caption is null on failure
type GenerateResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Caption *string `json:"caption"`
}

// Result - outcome of one caption generation. Caption is non-empty iff Success.
type Result struct {
	Success bool
	Message string
	Caption string
	Failure model.FailureKind
}

func succeeded(caption string) *Result {
	return &Result{Success: true, Message: MessageSuccess, Caption: caption}
}

func failed(kind model.FailureKind, message string) *Result {
	return &Result{Success: false, Message: message, Failure: kind}
}
