package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-dispatch/internal/vision"
	"fleet-dispatch/pkg/response"
)

const defaultResponse = "I'm not sure how to help with that."

// Chat godoc
// @Summary     Process a conversational turn
// @Description Runs one dispatcher turn: extracts entities, classifies the
// @Description intent, asks for confirmation on risky actions, and executes.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message, optional image and session id"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	// A broken upload is treated as "no image", never as a failed turn.
	var md *vision.Metadata
	var imageHint int64
	if req.Image != "" {
		if decoded, ok := vision.Decode(req.Image); ok {
			md = &decoded
			imageHint = vision.TripHint(req.Context, decoded)
		}
	}

	sess, release := h.sessions.Acquire(req.SessionID)
	defer release()

	if err := h.uc.ProcessTurn(ctx, sess, req.Message, imageHint); err != nil {
		h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
		response.InternalError(c, err)
		return
	}

	text := sess.LastAssistantMessage()
	if text == "" {
		text = defaultResponse
	}

	c.JSON(http.StatusOK, chatResp{
		Response:             text,
		Context:              req.Context,
		ImageProcessed:       md != nil,
		SessionID:            req.SessionID,
		AwaitingConfirmation: sess.AwaitingConfirmation,
		ImageMetadata:        md,
	})
}
