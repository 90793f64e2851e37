// Package codec implements the canonical JSON wire format for the user
// domain model: a single-key variant envelope around a flat object whose
// keys come from the per-type tables below. Encode and decode are
// hand-written per type against those tables; nothing is derived at
// runtime, so the wire contract is exactly the data declared here.
package codec

// Variant tags of the User union. The envelope of every document is
// {"<tag>": <payload>} with exactly one tag key, regardless of variant.
const (
	TagAdmin     = "admin"
	TagModerator = "moderator"
	TagBasicUser = "basic_user"
)

// fieldKeys is one type's declared wire-key table. Keys that do not apply
// to a type are left empty in its table.
type fieldKeys struct {
	Username     string
	Password     string
	EmailAddress string
	Active       string
	CreatedAt    string
	UpdatedAt    string
	Governs      string
	PromotedBy   string
}

var adminKeys = fieldKeys{
	Username:     "username",
	Password:     "password",
	EmailAddress: "email_address",
	Active:       "active",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
	PromotedBy:   "promoted_by",
}

var moderatorKeys = fieldKeys{
	Username:     "username",
	Password:     "password",
	EmailAddress: "email_address",
	Active:       "active",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
	Governs:      "governs",
	PromotedBy:   "promoted_by",
}

var basicUserKeys = fieldKeys{
	Username:     "username",
	Password:     "password",
	EmailAddress: "email_address",
	Active:       "active",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
