package router

import (
	"github.com/DjordjeVuckovic/base-checker/internal/session"
	"github.com/DjordjeVuckovic/base-checker/internal/token"
)

type TokenizeRequest struct {
	Input string `json:"input" example:"bin x 1010;"`
}

type TokenizeResponse struct {
	Tokens []token.Token `json:"tokens"`
}

type CreateSessionRequest struct {
	Sentinel string `json:"sentinel,omitempty" example:"END"`
}

type LineRequest struct {
	Line string `json:"line" example:"oct b 17;"`
}

type DeclarationsRequest struct {
	Lines []string `json:"lines"`
}

type DeclarationsResponse struct {
	Diagnostics []session.Diagnostic `json:"diagnostics"`
	Session     session.Snapshot     `json:"session"`
}

type ExpressionResponse struct {
	Diagnostic session.Diagnostic `json:"diagnostic"`
	// Undeclared lists every undeclared identifier, not only the first one.
	Undeclared []string         `json:"undeclared,omitempty"`
	Session    session.Snapshot `json:"session"`
}
