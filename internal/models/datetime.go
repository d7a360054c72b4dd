package models

// ParseRequest is the body of POST /api/datetime/parse.
// Calendar selects the parse strategy: "persian", "hijri", "gregorian", or
// "any" (default) for the multi-strategy chain.
type ParseRequest struct {
	Input    string `json:"input" validate:"required"`
	Timezone string `json:"timezone"`
	Calendar string `json:"calendar" validate:"calendar_kind"`
}

// ParseResponse carries the parsed instant. ZoneFallback is true when the
// requested timezone was unrecognized and the conversion silently used UTC.
type ParseResponse struct {
	UTC          string `json:"utc"`
	ZoneFallback bool   `json:"zone_fallback"`
}

// FormatRequest is the body of POST /api/datetime/format.
type FormatRequest struct {
	UTC      string `json:"utc" validate:"required,rfc3339"`
	Timezone string `json:"timezone"`
	Calendar string `json:"calendar" validate:"required,calendar_kind"`
	Long     bool   `json:"long"` // Persian month-name rendering
}

// FormatResponse carries the rendered wall-clock string.
type FormatResponse struct {
	Formatted    string `json:"formatted"`
	ZoneFallback bool   `json:"zone_fallback"`
}

// HumanizeRequest is the body of POST /api/datetime/humanize. Reference
// defaults to the current instant.
type HumanizeRequest struct {
	UTC       string `json:"utc" validate:"required,rfc3339"`
	Reference string `json:"reference" validate:"omitempty,rfc3339"`
}

// HumanizeResponse carries the coarse relative-time string.
type HumanizeResponse struct {
	Relative string `json:"relative"`
}

// NowResponse is the body of GET /api/datetime/now.
type NowResponse struct {
	UTC          string `json:"utc"`
	Formatted    string `json:"formatted"`
	ZoneFallback bool   `json:"zone_fallback"`
}
