package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrConfiguration   = goerr.New("configuration error", goerr.ID("ErrConfiguration"))
	ErrPayloadEncoding = goerr.New("could not build payload JSON", goerr.ID("ErrPayloadEncoding"))
	ErrInvalidInput    = goerr.New("invalid input", goerr.ID("ErrInvalidInput"))
)
