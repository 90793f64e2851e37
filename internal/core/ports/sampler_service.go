package ports

import (
	"context"

	"github.com/sampledata/user-sampler/internal/core/domain"
)

// SampleInput carries everything needed to produce one random entity.
type SampleInput struct {
	Kind  domain.EntityKind
	Depth int
	// Seed pins the random source for reproducible output. Nil means a
	// fresh, unpredictable seed per call.
	Seed *int64
}

// SamplerService produces well-formed random domain values on demand.
type SamplerService interface {
	Sample(ctx context.Context, input SampleInput) (domain.User, error)
}
