package adapter

import "errors"

// Sentinels for the status codes the sales backend actually answers with.
// Callers branch on them with errors.Is: a 400 means the sale payload is
// malformed and retrying is pointless, a 401 means the session token expired,
// a 5xx means the backend is unhealthy and the sale should stay queued.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
