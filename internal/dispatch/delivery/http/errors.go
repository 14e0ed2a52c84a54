package http

import "errors"

var (
	errEmptyTurn = errors.New("message or image is required")
)
