package service

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"time"

	"github.com/rs/zerolog"

	"github.com/sampledata/user-sampler/internal/core/codec"
	"github.com/sampledata/user-sampler/internal/core/domain"
	"github.com/sampledata/user-sampler/internal/core/generator"
	"github.com/sampledata/user-sampler/internal/core/ports"
)

// SamplerService produces random entities for the transport layer. Each
// call owns its random source, so concurrent requests never share
// generator state.
type SamplerService struct {
	maxDepth int
	logger   zerolog.Logger
}

func NewSamplerService(maxDepth int, logger zerolog.Logger) *SamplerService {
	return &SamplerService{maxDepth: maxDepth, logger: logger}
}

// Sample generates one random entity of the requested kind. The depth
// budget bounds the admin promotion chain; budgets above the configured
// maximum are rejected, never clamped.
func (s *SamplerService) Sample(_ context.Context, input ports.SampleInput) (domain.User, error) {
	if input.Depth > s.maxDepth {
		return nil, domain.ErrDepthTooLarge
	}

	seed := seedFor(input)
	rng := generator.NewSource(seed)

	var (
		user domain.User
		err  error
	)
	switch input.Kind {
	case domain.KindUser:
		user, err = generator.User(rng, input.Depth)
	case domain.KindAdmin:
		user, err = generator.Admin(rng, input.Depth)
	case domain.KindModerator:
		user, err = generator.Moderator(rng, input.Depth)
	case domain.KindBasicUser:
		user = generator.BasicUser(rng)
	default:
		return nil, domain.ErrUnknownKind
	}
	if err != nil {
		return nil, err
	}

	variant := codec.Tag(user)
	s.logger.Debug().
		Str("kind", string(input.Kind)).
		Str("variant", variant).
		Int("depth", input.Depth).
		Int64("seed", seed).
		Msg("entity sampled")

	return user, nil
}

// seedFor picks the seed for this call: the caller's, if pinned, else a
// fresh one from crypto/rand with a clock fallback.
func seedFor(input ports.SampleInput) int64 {
	if input.Seed != nil {
		return *input.Seed
	}
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
