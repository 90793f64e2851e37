package domain

// EntityKind names a sampleable entity type at the service boundary.
type EntityKind string

const (
	KindUser      EntityKind = "user"
	KindAdmin     EntityKind = "admin"
	KindModerator EntityKind = "moderator"
	KindBasicUser EntityKind = "basic_user"
)

// ParseEntityKind converts a string to an EntityKind.
func ParseEntityKind(s string) (EntityKind, error) {
	switch EntityKind(s) {
	case KindUser, KindAdmin, KindModerator, KindBasicUser:
		return EntityKind(s), nil
	}
	return "", ErrUnknownKind
}
