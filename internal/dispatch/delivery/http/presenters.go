package http

import "fleet-dispatch/internal/vision"

// chatReq is one conversational turn. Callers may send a message, an image,
// or both; sessionId is assigned server-side when omitted. The snake_case
// session_id alias is kept for older clients.
type chatReq struct {
	Message      string `json:"message"`
	SessionID    string `json:"sessionId"`
	AltSessionID string `json:"session_id"`
	Context      string `json:"context"`
	Image        string `json:"image"`
}

type chatResp struct {
	Response             string           `json:"response"`
	Context              string           `json:"context,omitempty"`
	ImageProcessed       bool             `json:"image_processed"`
	SessionID            string           `json:"sessionId"`
	AwaitingConfirmation bool             `json:"awaitingConfirmation"`
	ImageMetadata        *vision.Metadata `json:"imageMetadata,omitempty"`
}
