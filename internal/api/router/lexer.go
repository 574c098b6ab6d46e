package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/base-checker/internal/apperr"
	"github.com/DjordjeVuckovic/base-checker/internal/token"
	"github.com/labstack/echo/v4"
)

type LexerRouter struct {
	e     *echo.Echo
	lexer token.Tokenizer
}

func NewLexerRouter(e *echo.Echo, lexer token.Tokenizer) *LexerRouter {
	return &LexerRouter{
		e:     e,
		lexer: lexer,
	}
}

func (r *LexerRouter) Bind() {
	r.e.POST("/tokenize", r.tokenizeHandler)
}

// tokenizeHandler godoc
// @Summary Tokenize a line
// @Description Splits a declaration or expression line into classified tokens
// @Tags lexer
// @Accept json
// @Produce json
// @Param request body TokenizeRequest true "Line to tokenize"
// @Success 200 {object} TokenizeResponse
// @Failure 400 {object} map[string]string
// @Router /tokenize [post]
func (r *LexerRouter) tokenizeHandler(c echo.Context) error {
	var req TokenizeRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	return c.JSON(http.StatusOK, TokenizeResponse{Tokens: r.lexer.Tokenize(req.Input)})
}
