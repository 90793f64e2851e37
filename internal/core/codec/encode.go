package codec

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/sampledata/user-sampler/internal/core/domain"
)

// Encode renders a user as its canonical JSON document. The promotion
// chain is encoded as deep as the value actually nests; there is no
// depth limit on this side.
func Encode(u domain.User) ([]byte, error) {
	switch v := u.(type) {
	case domain.Admin:
		return json.Marshal(map[string]any{TagAdmin: adminPayload(v)})
	case domain.Moderator:
		return json.Marshal(map[string]any{TagModerator: moderatorPayload(v)})
	case domain.BasicUser:
		return json.Marshal(map[string]any{TagBasicUser: basicUserPayload(v)})
	}
	return nil, fmt.Errorf("codec: unsupported user variant %T", u)
}

// Tag returns the canonical variant tag for a user value.
func Tag(u domain.User) string {
	switch u.(type) {
	case domain.Admin:
		return TagAdmin
	case domain.Moderator:
		return TagModerator
	default:
		return TagBasicUser
	}
}

func adminPayload(a domain.Admin) map[string]any {
	m := map[string]any{
		adminKeys.Username:     a.Username,
		adminKeys.Password:     a.Password,
		adminKeys.EmailAddress: a.EmailAddress,
		adminKeys.Active:       a.Active,
		adminKeys.CreatedAt:    wireTime(a.CreatedAt),
		adminKeys.UpdatedAt:    wireTime(a.UpdatedAt),
	}
	if a.PromotedBy != nil {
		m[adminKeys.PromotedBy] = adminPayload(*a.PromotedBy)
	} else {
		m[adminKeys.PromotedBy] = nil
	}
	return m
}

func moderatorPayload(mod domain.Moderator) map[string]any {
	governs := mod.Governs
	if governs == nil {
		governs = []string{}
	}
	return map[string]any{
		moderatorKeys.Username:     mod.Username,
		moderatorKeys.Password:     mod.Password,
		moderatorKeys.EmailAddress: mod.EmailAddress,
		moderatorKeys.Active:       mod.Active,
		moderatorKeys.CreatedAt:    wireTime(mod.CreatedAt),
		moderatorKeys.UpdatedAt:    wireTime(mod.UpdatedAt),
		moderatorKeys.Governs:      governs,
		moderatorKeys.PromotedBy:   adminPayload(mod.PromotedBy),
	}
}

func basicUserPayload(u domain.BasicUser) map[string]any {
	return map[string]any{
		basicUserKeys.Username:     u.Username,
		basicUserKeys.Password:     u.Password,
		basicUserKeys.EmailAddress: u.EmailAddress,
		basicUserKeys.Active:       u.Active,
		basicUserKeys.CreatedAt:    wireTime(u.CreatedAt),
		basicUserKeys.UpdatedAt:    wireTime(u.UpdatedAt),
	}
}

func wireTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
