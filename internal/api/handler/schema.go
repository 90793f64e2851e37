package handler

import json "github.com/goccy/go-json"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// sampleRequest carries the query parameters of the sample endpoints.
// Depth is a pointer so "absent" (use the configured default) can be told
// apart from an explicit 0 (force the base case).
type sampleRequest struct {
	Depth *int   `query:"depth" validate:"omitnil,gte=0"`
	Seed  *int64 `query:"seed"`
}

// validateResponse reports the outcome of decoding a canonical document.
// PromotionChain is only present for admin documents.
type validateResponse struct {
	Variant        string          `json:"variant"`
	PromotionChain *int            `json:"promotion_chain,omitempty"`
	Canonical      json.RawMessage `json:"canonical"`
}
