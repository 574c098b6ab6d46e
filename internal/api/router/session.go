package router

import (
	"errors"
	"net/http"

	"github.com/DjordjeVuckovic/base-checker/internal/analyzer"
	"github.com/DjordjeVuckovic/base-checker/internal/apperr"
	"github.com/DjordjeVuckovic/base-checker/internal/session"
	"github.com/DjordjeVuckovic/base-checker/internal/token"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SessionRouter struct {
	e     *echo.Echo
	store *session.Store
	lexer token.Tokenizer
}

func NewSessionRouter(e *echo.Echo, store *session.Store, lexer token.Tokenizer) *SessionRouter {
	return &SessionRouter{
		e:     e,
		store: store,
		lexer: lexer,
	}
}

func (r *SessionRouter) Bind() {
	g := r.e.Group("/sessions")
	g.POST("", r.createHandler)
	g.GET("/:id", r.getHandler)
	g.POST("/:id/declarations", r.declareHandler)
	g.POST("/:id/expression", r.expressionHandler)
	g.DELETE("/:id", r.deleteHandler)
}

// createHandler godoc
// @Summary Start a session
// @Description Creates an empty symbol table that lives until the session is deleted or the server stops
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest false "Session options"
// @Success 201 {object} session.Snapshot
// @Failure 503 {object} map[string]string
// @Router /sessions [post]
func (r *SessionRouter) createHandler(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	var opts []session.Option
	if req.Sentinel != "" {
		opts = append(opts, session.WithSentinel(req.Sentinel))
	}

	snap, err := r.store.Create(opts...)
	if err != nil {
		return mapSessionError(err)
	}

	return c.JSON(http.StatusCreated, snap)
}

// getHandler godoc
// @Summary Get a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (r *SessionRouter) getHandler(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var snap session.Snapshot
	err = r.store.Do(id, func(s *session.Session) error {
		snap = s.Snapshot()
		return nil
	})
	if err != nil {
		return mapSessionError(err)
	}

	return c.JSON(http.StatusOK, snap)
}

// declareHandler godoc
// @Summary Declare variables
// @Description Processes declaration lines in order. A line equal to the session sentinel closes the declaration block.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body DeclarationsRequest true "Declaration lines"
// @Success 200 {object} DeclarationsResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/declarations [post]
func (r *SessionRouter) declareHandler(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req DeclarationsRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	resp := DeclarationsResponse{Diagnostics: []session.Diagnostic{}}
	err = r.store.Do(id, func(s *session.Session) error {
		for _, line := range req.Lines {
			if line == s.Sentinel() {
				s.EndDeclarations()
				break
			}
			d, err := s.Declare(line)
			if err != nil {
				return err
			}
			resp.Diagnostics = append(resp.Diagnostics, d)
		}
		resp.Session = s.Snapshot()
		return nil
	})
	if err != nil {
		return mapSessionError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

// expressionHandler godoc
// @Summary Check the expression
// @Description Checks that every identifier was declared and finishes the session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body LineRequest true "Expression line"
// @Success 200 {object} ExpressionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/expression [post]
func (r *SessionRouter) expressionHandler(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req LineRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	var resp ExpressionResponse
	err = r.store.Do(id, func(s *session.Session) error {
		d, err := s.CheckExpression(req.Line)
		if err != nil {
			return err
		}
		resp.Diagnostic = d
		if d.Kind == session.UndeclaredVariable {
			resp.Undeclared = analyzer.Undeclared(r.lexer.Tokenize(req.Line), s.Table())
		}
		resp.Session = s.Snapshot()
		return nil
	})
	if err != nil {
		return mapSessionError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

// deleteHandler godoc
// @Summary Discard a session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [delete]
func (r *SessionRouter) deleteHandler(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	if err := r.store.Delete(id); err != nil {
		return mapSessionError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func sessionID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.NewValidationWrap("invalid session id", err)
	}
	return id, nil
}

func mapSessionError(err error) error {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrSessionDone):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrStoreFull):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return err
	}
}
