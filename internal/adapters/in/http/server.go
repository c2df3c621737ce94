package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"foodbot/internal/core/application/dispatcher"
	"foodbot/internal/core/domain/model/intent"
	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Dispatcher answers classified conversation turns.
type Dispatcher interface {
	Dispatch(ctx context.Context, req dispatcher.Request) (dispatcher.Fulfillment, error)
}

// Server translates webhook calls into dispatcher requests.
type Server struct {
	dispatcher Dispatcher
	logger     *slog.Logger
}

// NewServer creates a new HTTP server backed by the given dispatcher.
func NewServer(d Dispatcher, logger *slog.Logger) *Server {
	return &Server{
		dispatcher: d,
		logger:     logger.With("component", "http_server"),
	}
}

// Webhook handles POST / and POST /webhook - fulfils one conversation turn.
func (s *Server) Webhook(ctx echo.Context) error {
	var body WebhookRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	contexts := body.QueryResult.OutputContexts
	if len(contexts) == 0 {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body: queryResult.outputContexts is empty",
		})
	}

	sessionID, err := kernel.SessionIDFromContextName(contexts[0].Name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid session: " + err.Error(),
		})
	}

	reply, err := s.dispatcher.Dispatch(ctx.Request().Context(), dispatcher.Request{
		Action:     body.QueryResult.Action,
		Intent:     body.QueryResult.Intent.DisplayName,
		Parameters: dispatcher.Parameters(body.QueryResult.Parameters),
		SessionID:  sessionID,
	})
	if err != nil {
		return s.dispatchError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, reply)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func (s *Server) dispatchError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, intent.ErrUnrecognizedIntent):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parameters: " + err.Error(),
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to fulfil turn",
			"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID), "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to fulfil the request",
		})
	}
}
