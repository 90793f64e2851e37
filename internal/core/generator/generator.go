// Package generator produces structurally valid random domain values.
//
// Every function takes the random source explicitly; there is no package
// state, so two calls with equally seeded sources yield identical values.
// Recursion through Admin.PromotedBy is bounded by an explicit depth
// budget that is decremented on each recursive call, which guarantees
// termination regardless of the random choices made.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/sampledata/user-sampler/internal/core/domain"
)

// ErrNegativeDepth is returned when a caller passes a depth budget below
// zero. Valid callers never do; the budget is never clamped.
var ErrNegativeDepth = errors.New("generator: negative depth budget")

// Timestamps are drawn uniformly from this window, at second precision.
var (
	timeRangeStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	timeRangeEnd   = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
)

const (
	minTextLen = 3
	maxTextLen = 12
	maxGoverns = 4

	letters = "abcdefghijklmnopqrstuvwxyz"
)

// NewSource returns a deterministic random source for the given seed.
// One source per logical request; sources are not safe for concurrent use.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// User generates a random user with the variant chosen uniformly from the
// three alternatives, so repeated calls exercise every branch.
func User(rng *rand.Rand, depth int) (domain.User, error) {
	if depth < 0 {
		return nil, ErrNegativeDepth
	}
	switch rng.Intn(3) {
	case 0:
		return Admin(rng, depth)
	case 1:
		return Moderator(rng, depth)
	default:
		return BasicUser(rng), nil
	}
}

// Admin generates a random admin whose promotion chain is at most depth
// links long. At depth 0 the promoter is always absent; above that, a fair
// coin decides between no promoter and a fresh admin generated with
// depth-1.
func Admin(rng *rand.Rand, depth int) (domain.Admin, error) {
	if depth < 0 {
		return domain.Admin{}, ErrNegativeDepth
	}
	a := domain.Admin{}
	fillBase(rng, &a.Username, &a.Password, &a.EmailAddress, &a.Active, &a.CreatedAt, &a.UpdatedAt)
	if depth > 0 && rng.Intn(2) == 1 {
		promoter, err := Admin(rng, depth-1)
		if err != nil {
			return domain.Admin{}, err
		}
		a.PromotedBy = &promoter
	}
	return a, nil
}

// Moderator generates a random moderator. The promoting admin is generated
// with the same remaining budget: the Moderator→Admin edge is a fixed
// reference, not a recursion step, so it does not consume a level.
func Moderator(rng *rand.Rand, depth int) (domain.Moderator, error) {
	if depth < 0 {
		return domain.Moderator{}, ErrNegativeDepth
	}
	m := domain.Moderator{}
	fillBase(rng, &m.Username, &m.Password, &m.EmailAddress, &m.Active, &m.CreatedAt, &m.UpdatedAt)

	m.Governs = make([]string, rng.Intn(maxGoverns+1))
	for i := range m.Governs {
		m.Governs[i] = text(rng)
	}

	promoter, err := Admin(rng, depth)
	if err != nil {
		return domain.Moderator{}, err
	}
	m.PromotedBy = promoter
	return m, nil
}

// BasicUser generates a random basic user. It has no recursive fields and
// cannot fail.
func BasicUser(rng *rand.Rand) domain.BasicUser {
	u := domain.BasicUser{}
	fillBase(rng, &u.Username, &u.Password, &u.EmailAddress, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	return u
}

// fillBase populates the fields shared by all three variants. UpdatedAt is
// drawn from [CreatedAt, timeRangeEnd), so CreatedAt <= UpdatedAt holds by
// construction.
func fillBase(rng *rand.Rand, username, password, email *string, active *bool, createdAt, updatedAt *time.Time) {
	*username = text(rng)
	*password = text(rng)
	*email = text(rng) + "@" + text(rng) + ".test"
	*active = rng.Intn(2) == 1
	*createdAt = instantBetween(rng, timeRangeStart, timeRangeEnd)
	*updatedAt = instantBetween(rng, *createdAt, timeRangeEnd)
}

func text(rng *rand.Rand) string {
	n := minTextLen + rng.Intn(maxTextLen-minTextLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}

func instantBetween(rng *rand.Rand, from, to time.Time) time.Time {
	span := to.Unix() - from.Unix()
	if span <= 0 {
		return from
	}
	return time.Unix(from.Unix()+rng.Int63n(span), 0).UTC()
}
