package planner

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/wanderplan/wanderplan/internal/render"
	"github.com/wanderplan/wanderplan/internal/types"
)

// Handler serves the trip request form and the generated plan page.
type Handler struct {
	plannerService PlannerService
	renderer       *render.Renderer
	logger         *slog.Logger
}

func NewHandler(plannerService PlannerService, renderer *render.Renderer, logger *slog.Logger) *Handler {
	return &Handler{
		plannerService: plannerService,
		renderer:       renderer,
		logger:         logger,
	}
}

// ShowForm renders the trip request form.
func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "")
}

// CreatePlan normalizes the submitted form, runs the synthesis pipeline and
// renders the plan page. Recovered failures (primary source, photo search)
// never surface here; only validation problems and genuinely unexpected
// errors reach the user.
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlannerHandler").Start(r.Context(), "CreatePlan", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/plan"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "CreatePlan"))

	if err := r.ParseForm(); err != nil {
		l.WarnContext(ctx, "Failed to parse form", slog.Any("error", err))
		span.SetStatus(codes.Error, "Form parse failed")
		h.renderForm(w, r, http.StatusBadRequest, "We could not read your form submission. Please try again.")
		return
	}

	req, err := NormalizeTripRequest(r.PostForm)
	if err != nil {
		l.InfoContext(ctx, "Trip request failed validation", slog.Any("error", err))
		span.SetStatus(codes.Error, "Validation failed")
		h.renderForm(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	plan := h.plannerService.CreatePlan(ctx, req)

	if err := h.renderer.Render(w, http.StatusOK, "plan.html", plan); err != nil {
		l.ErrorContext(ctx, "Failed to render plan page", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Render failed")
		h.renderError(w, r, http.StatusInternalServerError, userFacingMessage(err))
		return
	}
	span.SetStatus(codes.Ok, "Plan rendered")
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, errorMessage string) {
	data := render.IndexData{
		Categories:   categoryOrder,
		DayOptions:   dayOptions(),
		ErrorMessage: errorMessage,
	}
	if err := h.renderer.Render(w, status, "index.html", data); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to render form", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := h.renderer.Render(w, status, "error.html", render.ErrorData{Message: message}); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to render error page", slog.Any("error", err))
		http.Error(w, message, status)
	}
}

func dayOptions() []int {
	opts := make([]int, 0, 14)
	for d := 1; d <= 14; d++ {
		opts = append(opts, d)
	}
	return opts
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, types.ErrEmptyCity):
		return "Please enter a destination city."
	case errors.Is(err, types.ErrEmptyInterests):
		return "Please select or enter at least one interest."
	case errors.Is(err, types.ErrInputTooLong):
		return "That input is a little long. Keep the city under 100 characters and interests under 200."
	}
	return "Please check your input and try again."
}

// userFacingMessage maps an unexpected failure to user-facing copy, with
// timeout, rate-limit and auth conditions called out when detectable. The
// underlying error is only ever logged, never shown.
func userFacingMessage(err error) string {
	if err == nil {
		return "Something unexpected went wrong. Please try again."
	}
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, context.DeadlineExceeded) || strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return "The request took too long to complete. Please try again in a moment."
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota"):
		return "We are handling a lot of requests right now. Please try again shortly."
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") || strings.Contains(msg, "api key") || strings.Contains(msg, "unauthorized"):
		return "The planner could not authenticate with an upstream service. Please try again later."
	}
	return "Something unexpected went wrong. Please try again."
}
