package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/internal/models"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/internal/service"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/calendar"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/helpers"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/metrics"
)

// DateTimeEngine is the conversion surface the handler needs from the
// service layer.
type DateTimeEngine interface {
	ParsePersian(input, zone string) (time.Time, error)
	ParseHijri(input, zone string) (time.Time, error)
	ParseGregorian(input, zone string) (time.Time, error)
	ParseAny(input, zone string) (t time.Time, zoneUsed bool, err error)
	FormatForUser(utc time.Time, zone string, kind calendar.Kind) (string, error)
	FormatJalaliLong(utc time.Time, zone string) string
	Now(zone string, kind calendar.Kind) (time.Time, string, error)
	HumanizeRelative(target, reference time.Time) string
	ZoneFallback(zone string) bool
}

type DateTimeHandler struct {
	engine    DateTimeEngine
	validator *helpers.CustomValidator
	metrics   *metrics.Metrics
}

// NewDateTimeHandler creates the HTTP handler. m may be nil in tests.
func NewDateTimeHandler(engine DateTimeEngine, m *metrics.Metrics) *DateTimeHandler {
	return &DateTimeHandler{
		engine:    engine,
		validator: helpers.NewCustomValidator(),
		metrics:   m,
	}
}

// Register attaches the handler's routes to mux.
func (h *DateTimeHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/datetime/parse", h.Parse)
	mux.HandleFunc("/api/datetime/format", h.Format)
	mux.HandleFunc("/api/datetime/humanize", h.Humanize)
	mux.HandleFunc("/api/datetime/now", h.Now)
}

// dateInput re-validates the input of an explicit-calendar parse against the
// numeric date grammar.
type dateInput struct {
	Input string `validate:"required,date_literal"`
}

// Parse handles POST /api/datetime/parse
// Body: {input, timezone?, calendar?=any|persian|hijri|gregorian}
func (h *DateTimeHandler) Parse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req models.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validator.Validate(req); err != nil {
		helpers.WriteValidationErrorResponse(w, err)
		return
	}

	kind := calendar.ParseKind(req.Calendar)
	if kind != calendar.KindOther {
		// Explicit-calendar requests go through the numeric grammar only,
		// so grammar misses can surface as field errors up front.
		if err := h.validator.Validate(dateInput{Input: req.Input}); err != nil {
			helpers.WriteValidationErrorResponse(w, err)
			return
		}
	}

	var utc time.Time
	var err error
	zoneUsed := true
	switch kind {
	case calendar.KindPersian:
		utc, err = h.engine.ParsePersian(req.Input, req.Timezone)
	case calendar.KindHijri:
		utc, err = h.engine.ParseHijri(req.Input, req.Timezone)
	case calendar.KindGregorian:
		utc, err = h.engine.ParseGregorian(req.Input, req.Timezone)
	case calendar.KindOther:
		// "any" and unnamed calendars go through the strategy chain.
		utc, zoneUsed, err = h.engine.ParseAny(req.Input, req.Timezone)
	}
	if err != nil {
		h.writeParseError(w, err)
		return
	}

	// A literal with its own offset never consulted the zone, so a bad
	// zone identifier is not a degraded conversion.
	writeJSON(w, http.StatusOK, models.ParseResponse{
		UTC:          utc.Format(time.RFC3339),
		ZoneFallback: zoneUsed && h.engine.ZoneFallback(req.Timezone),
	})
}

// Format handles POST /api/datetime/format
// Body: {utc, timezone?, calendar, long?}
func (h *DateTimeHandler) Format(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req models.FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validator.Validate(req); err != nil {
		helpers.WriteValidationErrorResponse(w, err)
		return
	}

	utc, err := time.Parse(time.RFC3339, req.UTC)
	if err != nil {
		writeError(w, http.StatusBadRequest, "utc must be an RFC 3339 instant")
		return
	}

	kind := calendar.ParseKind(req.Calendar)

	var formatted string
	if req.Long && kind == calendar.KindPersian {
		formatted = h.engine.FormatJalaliLong(utc, req.Timezone)
	} else {
		formatted, err = h.engine.FormatForUser(utc, req.Timezone, kind)
		if err != nil {
			writeError(w, http.StatusBadRequest, "calendar must be gregorian, persian or hijri")
			return
		}
	}

	writeJSON(w, http.StatusOK, models.FormatResponse{
		Formatted:    formatted,
		ZoneFallback: h.engine.ZoneFallback(req.Timezone),
	})
}

// Humanize handles POST /api/datetime/humanize
// Body: {utc, reference?} — reference defaults to now
func (h *DateTimeHandler) Humanize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req models.HumanizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validator.Validate(req); err != nil {
		helpers.WriteValidationErrorResponse(w, err)
		return
	}

	utc, err := time.Parse(time.RFC3339, req.UTC)
	if err != nil {
		writeError(w, http.StatusBadRequest, "utc must be an RFC 3339 instant")
		return
	}

	reference := time.Now().UTC()
	if req.Reference != "" {
		reference, err = time.Parse(time.RFC3339, req.Reference)
		if err != nil {
			writeError(w, http.StatusBadRequest, "reference must be an RFC 3339 instant")
			return
		}
	}

	writeJSON(w, http.StatusOK, models.HumanizeResponse{
		Relative: h.engine.HumanizeRelative(utc, reference),
	})
}

// Now handles GET /api/datetime/now?timezone=&calendar=
func (h *DateTimeHandler) Now(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	zone := r.URL.Query().Get("timezone")
	kind := calendar.ParseKind(r.URL.Query().Get("calendar"))
	if kind == calendar.KindOther {
		kind = calendar.KindPersian // platform default
	}

	utc, formatted, err := h.engine.Now(zone, kind)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to format current time")
		return
	}

	writeJSON(w, http.StatusOK, models.NowResponse{
		UTC:          utc.Format(time.RFC3339),
		Formatted:    formatted,
		ZoneFallback: h.engine.ZoneFallback(zone),
	})
}

// writeParseError maps engine failures onto HTTP statuses: both pattern and
// calendar rejections are user input problems, so 422.
func (h *DateTimeHandler) writeParseError(w http.ResponseWriter, err error) {
	var invalidDate *calendar.InvalidDateError
	switch {
	case errors.Is(err, service.ErrNoPatternMatch):
		h.countParseFailure("no_pattern_match")
		writeError(w, http.StatusUnprocessableEntity, "input does not match any recognized date format")
	case errors.As(err, &invalidDate):
		h.countParseFailure("invalid_calendar_date")
		writeError(w, http.StatusUnprocessableEntity, invalidDate.Error())
	default:
		writeError(w, http.StatusInternalServerError, "conversion failed")
	}
}

func (h *DateTimeHandler) countParseFailure(kind string) {
	if h.metrics != nil {
		h.metrics.ParseFailures.WithLabelValues(kind).Inc()
	}
}
