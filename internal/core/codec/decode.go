package codec

import (
	"fmt"
	"sort"
	"time"

	json "github.com/goccy/go-json"

	"github.com/sampledata/user-sampler/internal/core/domain"
)

// Decode parses a canonical JSON document back into a user value. It is
// all-or-nothing: any shape violation returns a typed error and no value.
// Promotion chains decode to arbitrary depth; the generation depth budget
// does not apply here.
func Decode(doc []byte) (domain.User, error) {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(doc, &outer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(outer) != 1 {
		keys := make([]string, 0, len(outer))
		for k := range outer {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, &UnknownTagError{Keys: keys}
	}

	for tag, payload := range outer {
		switch tag {
		case TagAdmin:
			return decodeAdmin(payload, TagAdmin)
		case TagModerator:
			return decodeModerator(payload, TagModerator)
		case TagBasicUser:
			return decodeBasicUser(payload, TagBasicUser)
		default:
			return nil, &UnknownTagError{Keys: []string{tag}}
		}
	}
	return nil, &UnknownTagError{}
}

func decodeAdmin(raw json.RawMessage, path string) (domain.Admin, error) {
	o, err := asObject(raw, path)
	if err != nil {
		return domain.Admin{}, err
	}

	a := domain.Admin{}
	if err := o.base(adminKeys, &a.Username, &a.Password, &a.EmailAddress, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Admin{}, err
	}

	// Absent and null both mean "no promoter".
	if promoter, ok := o.fields[adminKeys.PromotedBy]; ok && kindOf(promoter) != "null" {
		p, err := decodeAdmin(promoter, path+"."+adminKeys.PromotedBy)
		if err != nil {
			return domain.Admin{}, err
		}
		a.PromotedBy = &p
	}
	return a, nil
}

func decodeModerator(raw json.RawMessage, path string) (domain.Moderator, error) {
	o, err := asObject(raw, path)
	if err != nil {
		return domain.Moderator{}, err
	}

	m := domain.Moderator{}
	if err := o.base(moderatorKeys, &m.Username, &m.Password, &m.EmailAddress, &m.Active, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return domain.Moderator{}, err
	}

	if m.Governs, err = o.stringSlice(moderatorKeys.Governs); err != nil {
		return domain.Moderator{}, err
	}

	// A moderator's promoter is required and non-null.
	promoter, ok := o.fields[moderatorKeys.PromotedBy]
	if !ok {
		return domain.Moderator{}, &MissingFieldError{Path: path + "." + moderatorKeys.PromotedBy}
	}
	m.PromotedBy, err = decodeAdmin(promoter, path+"."+moderatorKeys.PromotedBy)
	if err != nil {
		return domain.Moderator{}, err
	}
	return m, nil
}

func decodeBasicUser(raw json.RawMessage, path string) (domain.BasicUser, error) {
	o, err := asObject(raw, path)
	if err != nil {
		return domain.BasicUser{}, err
	}

	u := domain.BasicUser{}
	if err := o.base(basicUserKeys, &u.Username, &u.Password, &u.EmailAddress, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.BasicUser{}, err
	}
	return u, nil
}

// object is a decoded payload plus the wire path it sits at, for error
// reporting.
type object struct {
	path   string
	fields map[string]json.RawMessage
}

func asObject(raw json.RawMessage, path string) (*object, error) {
	if k := kindOf(raw); k != "object" {
		return nil, &TypeMismatchError{Path: path, Expected: "object", Actual: k}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &object{path: path, fields: fields}, nil
}

// base extracts the six fields shared by all variants, using the given
// type's key table.
func (o *object) base(keys fieldKeys, username, password, email *string, active *bool, createdAt, updatedAt *time.Time) error {
	var err error
	if *username, err = o.str(keys.Username); err != nil {
		return err
	}
	if *password, err = o.str(keys.Password); err != nil {
		return err
	}
	if *email, err = o.str(keys.EmailAddress); err != nil {
		return err
	}
	if *active, err = o.boolean(keys.Active); err != nil {
		return err
	}
	if *createdAt, err = o.timestamp(keys.CreatedAt); err != nil {
		return err
	}
	if *updatedAt, err = o.timestamp(keys.UpdatedAt); err != nil {
		return err
	}
	return nil
}

func (o *object) require(key string) (json.RawMessage, error) {
	raw, ok := o.fields[key]
	if !ok {
		return nil, &MissingFieldError{Path: o.path + "." + key}
	}
	return raw, nil
}

func (o *object) str(key string) (string, error) {
	raw, err := o.require(key)
	if err != nil {
		return "", err
	}
	if k := kindOf(raw); k != "string" {
		return "", &TypeMismatchError{Path: o.path + "." + key, Expected: "string", Actual: k}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return s, nil
}

func (o *object) boolean(key string) (bool, error) {
	raw, err := o.require(key)
	if err != nil {
		return false, err
	}
	if k := kindOf(raw); k != "bool" {
		return false, &TypeMismatchError{Path: o.path + "." + key, Expected: "bool", Actual: k}
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return b, nil
}

func (o *object) timestamp(key string) (time.Time, error) {
	s, err := o.str(key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, &InvalidTimestampError{Path: o.path + "." + key, Value: s}
	}
	return t.UTC(), nil
}

func (o *object) stringSlice(key string) ([]string, error) {
	raw, err := o.require(key)
	if err != nil {
		return nil, err
	}
	if k := kindOf(raw); k != "array" {
		return nil, &TypeMismatchError{Path: o.path + "." + key, Expected: "array", Actual: k}
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	out := make([]string, len(elems))
	for i, e := range elems {
		if k := kindOf(e); k != "string" {
			return nil, &TypeMismatchError{
				Path:     fmt.Sprintf("%s.%s[%d]", o.path, key, i),
				Expected: "string",
				Actual:   k,
			}
		}
		if err := json.Unmarshal(e, &out[i]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	return out, nil
}

// kindOf classifies a raw JSON value by its first significant byte.
func kindOf(raw json.RawMessage) string {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return "object"
		case '[':
			return "array"
		case '"':
			return "string"
		case 't', 'f':
			return "bool"
		case 'n':
			return "null"
		default:
			return "number"
		}
	}
	return "empty"
}
