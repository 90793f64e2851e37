// Package metrics defines all custom Prometheus metrics for the user
// sampler API. It is the single source of truth for metric names, labels,
// and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usersampler"

// SamplesGeneratedTotal counts entities produced by the generator.
// Label:
//   - variant: the variant tag of the generated value ("admin", "moderator", "basic_user")
var SamplesGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "samples_generated_total",
		Help:      "Total number of random entities generated, by variant.",
	},
	[]string{"variant"},
)

// SampleErrorsTotal counts sample requests rejected before generation.
// Label:
//   - reason: short description of the rejection (e.g. "depth_too_large", "negative_depth")
var SampleErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sample_errors_total",
		Help:      "Total number of sample requests rejected, by reason.",
	},
	[]string{"reason"},
)

// DecodeErrorsTotal counts documents rejected by the canonical decoder.
// Label:
//   - reason: the decode error class ("unknown_tag", "missing_field", "type_mismatch",
//     "invalid_timestamp", "malformed")
var DecodeErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "decode_errors_total",
		Help:      "Total number of documents rejected by the canonical decoder, by reason.",
	},
	[]string{"reason"},
)

// PromotionChainLength observes the promotion-chain length of generated
// admins, which is always bounded by the request's depth budget.
var PromotionChainLength = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "promotion_chain_length",
		Help:      "Length of the admin promotion chain in generated entities.",
		Buckets:   prometheus.LinearBuckets(0, 1, 9),
	},
)
