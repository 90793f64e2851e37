package domain

import "time"

// User is the closed union of the three account variants. Every value is
// exactly one of Admin, Moderator, or BasicUser; callers dispatch with an
// exhaustive type switch.
type User interface {
	isUser()
}

func (Admin) isUser()     {}
func (Moderator) isUser() {}
func (BasicUser) isUser() {}

// BasicUser is a plain account with no relationships.
type BasicUser struct {
	Username     string
	Password     string
	EmailAddress string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Moderator governs an ordered list of communities and was promoted by
// exactly one Admin. The promoter reference is non-recursive: it is a
// single Admin value, never another Moderator.
type Moderator struct {
	Username     string
	Password     string
	EmailAddress string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Governs      []string
	PromotedBy   Admin
}

// Admin may itself have been promoted by another Admin. PromotedBy is nil
// for admins created at initialization; otherwise it owns a fresh Admin
// value, so promotion chains are always finite and cycle-free.
type Admin struct {
	Username     string
	Password     string
	EmailAddress string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	PromotedBy   *Admin
}

// ChainLen returns the number of links in the promotion chain above this
// admin: 0 when there is no promoter, 1 when the promoter has none, and
// so on.
func (a Admin) ChainLen() int {
	n := 0
	for p := a.PromotedBy; p != nil; p = p.PromotedBy {
		n++
	}
	return n
}

// Equal reports structural equality of two users, including the variant.
// Timestamps are compared with time.Equal so wall-clock representation
// details never affect the result.
func Equal(a, b User) bool {
	switch x := a.(type) {
	case BasicUser:
		y, ok := b.(BasicUser)
		return ok && x.Equal(y)
	case Moderator:
		y, ok := b.(Moderator)
		return ok && x.Equal(y)
	case Admin:
		y, ok := b.(Admin)
		return ok && x.Equal(y)
	}
	return false
}

func (u BasicUser) Equal(v BasicUser) bool {
	return u.Username == v.Username &&
		u.Password == v.Password &&
		u.EmailAddress == v.EmailAddress &&
		u.Active == v.Active &&
		u.CreatedAt.Equal(v.CreatedAt) &&
		u.UpdatedAt.Equal(v.UpdatedAt)
}

func (m Moderator) Equal(n Moderator) bool {
	if m.Username != n.Username ||
		m.Password != n.Password ||
		m.EmailAddress != n.EmailAddress ||
		m.Active != n.Active ||
		!m.CreatedAt.Equal(n.CreatedAt) ||
		!m.UpdatedAt.Equal(n.UpdatedAt) {
		return false
	}
	if len(m.Governs) != len(n.Governs) {
		return false
	}
	for i := range m.Governs {
		if m.Governs[i] != n.Governs[i] {
			return false
		}
	}
	return m.PromotedBy.Equal(n.PromotedBy)
}

func (a Admin) Equal(b Admin) bool {
	if a.Username != b.Username ||
		a.Password != b.Password ||
		a.EmailAddress != b.EmailAddress ||
		a.Active != b.Active ||
		!a.CreatedAt.Equal(b.CreatedAt) ||
		!a.UpdatedAt.Equal(b.UpdatedAt) {
		return false
	}
	switch {
	case a.PromotedBy == nil && b.PromotedBy == nil:
		return true
	case a.PromotedBy == nil || b.PromotedBy == nil:
		return false
	default:
		return a.PromotedBy.Equal(*b.PromotedBy)
	}
}
