package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// processChatReq binds and normalizes a chat turn. A turn must carry either
// text or an image; the session id is minted when the client sends none.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return chatReq{}, err
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" && req.Image == "" {
		return chatReq{}, errEmptyTurn
	}

	if req.SessionID == "" {
		req.SessionID = req.AltSessionID
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	return req, nil
}
