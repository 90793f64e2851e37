package codec

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/sampledata/user-sampler/internal/core/domain"
	"github.com/sampledata/user-sampler/internal/core/generator"
)

func mustEncode(t *testing.T, u domain.User) []byte {
	t.Helper()
	doc, err := Encode(u)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return doc
}

func envelope(t *testing.T, doc []byte) map[string]json.RawMessage {
	t.Helper()
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(doc, &outer); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return outer
}

func sampleBasicUser() domain.BasicUser {
	return domain.BasicUser{
		Username:     "serf",
		Password:     "hunter2",
		EmailAddress: "serf@example.test",
		Active:       true,
		CreatedAt:    time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC),
		UpdatedAt:    time.Date(2022, 8, 9, 10, 11, 12, 0, time.UTC),
	}
}

func TestRoundTrip_GeneratedUsers(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		for depth := 0; depth <= 5; depth++ {
			rng := generator.NewSource(seed)
			u, err := generator.User(rng, depth)
			if err != nil {
				t.Fatalf("seed %d depth %d: generate: %v", seed, depth, err)
			}
			doc := mustEncode(t, u)
			back, err := Decode(doc)
			if err != nil {
				t.Fatalf("seed %d depth %d: decode: %v\ndoc: %s", seed, depth, err, doc)
			}
			if !domain.Equal(u, back) {
				t.Fatalf("seed %d depth %d: round trip changed value\nin:  %#v\nout: %#v", seed, depth, u, back)
			}
		}
	}
}

func TestRoundTrip_ChainBeyondGenerationBudget(t *testing.T) {
	// Build a 50-link chain by hand; decoding has no depth ceiling.
	a := domain.Admin{Username: "root", Password: "p", EmailAddress: "root@x.test",
		Active: true, CreatedAt: time.Unix(1700000000, 0).UTC(), UpdatedAt: time.Unix(1700000001, 0).UTC()}
	for i := 0; i < 50; i++ {
		next := a
		a = domain.Admin{
			Username:     fmt.Sprintf("admin%d", i),
			Password:     "p",
			EmailAddress: "a@x.test",
			Active:       i%2 == 0,
			CreatedAt:    time.Unix(1700000000, 0).UTC(),
			UpdatedAt:    time.Unix(1700000002, 0).UTC(),
			PromotedBy:   &next,
		}
	}

	back, err := Decode(mustEncode(t, a))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	decoded, ok := back.(domain.Admin)
	if !ok {
		t.Fatalf("expected admin, got %T", back)
	}
	if decoded.ChainLen() != 50 {
		t.Fatalf("chain length %d, want 50", decoded.ChainLen())
	}
	if !a.Equal(decoded) {
		t.Fatalf("deep round trip changed value")
	}
}

func TestEncode_BasicUserWireKeys(t *testing.T) {
	doc := mustEncode(t, sampleBasicUser())

	outer := envelope(t, doc)
	payload, ok := outer[TagBasicUser]
	if !ok {
		t.Fatalf("missing %q envelope key; doc: %s", TagBasicUser, doc)
	}

	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if fields["username"] != "serf" {
		t.Fatalf("wire key username = %v, want %q", fields["username"], "serf")
	}
	for _, key := range []string{"username", "password", "email_address", "active", "created_at", "updated_at"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing wire key %q in %s", key, payload)
		}
	}
	if len(fields) != 6 {
		t.Fatalf("basic_user payload has %d keys, want 6: %s", len(fields), payload)
	}
}

func TestEncode_AdminEnvelopeHasExactlyOneKey(t *testing.T) {
	a, err := generator.Admin(generator.NewSource(5), 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	outer := envelope(t, mustEncode(t, a))
	if len(outer) != 1 {
		t.Fatalf("envelope has %d keys, want 1", len(outer))
	}
	if _, ok := outer[TagAdmin]; !ok {
		t.Fatalf("envelope key is not %q", TagAdmin)
	}
}

func TestEncode_AbsentPromoterIsNull(t *testing.T) {
	a := domain.Admin{Username: "u", Password: "p", EmailAddress: "u@x.test",
		CreatedAt: time.Unix(0, 0).UTC(), UpdatedAt: time.Unix(0, 0).UTC()}
	doc := mustEncode(t, a)
	if !strings.Contains(string(doc), `"promoted_by":null`) {
		t.Fatalf("expected explicit null promoter, got %s", doc)
	}
}

func TestDecode_UnknownTag(t *testing.T) {
	_, err := Decode([]byte(`{"unknown_type": {}}`))
	var tagErr *UnknownTagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("got %v, want UnknownTagError", err)
	}
	if len(tagErr.Keys) != 1 || tagErr.Keys[0] != "unknown_type" {
		t.Fatalf("offending keys = %v", tagErr.Keys)
	}
}

func TestDecode_MultipleTags(t *testing.T) {
	doc := []byte(`{"admin": {}, "moderator": {}}`)
	_, err := Decode(doc)
	var tagErr *UnknownTagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("got %v, want UnknownTagError", err)
	}
	if len(tagErr.Keys) != 2 {
		t.Fatalf("offending keys = %v, want both envelope keys", tagErr.Keys)
	}
}

func TestDecode_EmptyEnvelope(t *testing.T) {
	_, err := Decode([]byte(`{}`))
	var tagErr *UnknownTagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("got %v, want UnknownTagError", err)
	}
}

func TestDecode_MissingField(t *testing.T) {
	doc := []byte(`{"basic_user": {"username": "x", "password": "y", "active": true,
		"created_at": "2021-01-01T00:00:00Z", "updated_at": "2021-01-01T00:00:00Z"}}`)
	_, err := Decode(doc)
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingFieldError", err)
	}
	if missing.Path != "basic_user.email_address" {
		t.Fatalf("path = %q", missing.Path)
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		path string
	}{
		{"bool as string", `{"basic_user": {"username": "x", "password": "y", "email_address": "e",
			"active": "yes", "created_at": "2021-01-01T00:00:00Z", "updated_at": "2021-01-01T00:00:00Z"}}`,
			"basic_user.active"},
		{"timestamp as number", `{"basic_user": {"username": "x", "password": "y", "email_address": "e",
			"active": true, "created_at": 12345, "updated_at": "2021-01-01T00:00:00Z"}}`,
			"basic_user.created_at"},
		{"governs as object", `{"moderator": {"username": "x", "password": "y", "email_address": "e",
			"active": true, "created_at": "2021-01-01T00:00:00Z", "updated_at": "2021-01-01T00:00:00Z",
			"governs": {}, "promoted_by": {}}}`,
			"moderator.governs"},
		{"payload not object", `{"admin": 7}`, "admin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.doc))
			var mismatch *TypeMismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("got %v, want TypeMismatchError", err)
			}
			if mismatch.Path != tc.path {
				t.Fatalf("path = %q, want %q", mismatch.Path, tc.path)
			}
		})
	}
}

func TestDecode_InvalidTimestamp(t *testing.T) {
	doc := []byte(`{"basic_user": {"username": "x", "password": "y", "email_address": "e",
		"active": true, "created_at": "yesterday", "updated_at": "2021-01-01T00:00:00Z"}}`)
	_, err := Decode(doc)
	var ts *InvalidTimestampError
	if !errors.As(err, &ts) {
		t.Fatalf("got %v, want InvalidTimestampError", err)
	}
	if ts.Path != "basic_user.created_at" || ts.Value != "yesterday" {
		t.Fatalf("path=%q value=%q", ts.Path, ts.Value)
	}
}

func TestDecode_MalformedDocument(t *testing.T) {
	if _, err := Decode([]byte(`{"admin": `)); !errors.Is(err, ErrMalformed) {
		t.Fatalf("got %v, want ErrMalformed", err)
	}
}

func TestDecode_RecursivePromoterChain(t *testing.T) {
	doc := []byte(`{"admin": {
		"username": "a", "password": "p", "email_address": "a@x.test", "active": true,
		"created_at": "2021-01-01T00:00:00Z", "updated_at": "2021-06-01T00:00:00Z",
		"promoted_by": {
			"username": "b", "password": "p", "email_address": "b@x.test", "active": false,
			"created_at": "2020-01-01T00:00:00Z", "updated_at": "2020-06-01T00:00:00Z",
			"promoted_by": null
		}
	}}`)
	u, err := Decode(doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	a, ok := u.(domain.Admin)
	if !ok {
		t.Fatalf("expected admin, got %T", u)
	}
	if a.ChainLen() != 1 {
		t.Fatalf("chain length %d, want 1", a.ChainLen())
	}
	if a.PromotedBy.Username != "b" || a.PromotedBy.PromotedBy != nil {
		t.Fatalf("promoter decoded wrong: %#v", a.PromotedBy)
	}
}

func TestDecode_AbsentPromoterAccepted(t *testing.T) {
	doc := []byte(`{"admin": {
		"username": "a", "password": "p", "email_address": "a@x.test", "active": true,
		"created_at": "2021-01-01T00:00:00Z", "updated_at": "2021-06-01T00:00:00Z"
	}}`)
	u, err := Decode(doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a := u.(domain.Admin); a.PromotedBy != nil {
		t.Fatalf("absent promoter decoded as %#v", a.PromotedBy)
	}
}

func TestDecode_ModeratorRequiresPromoter(t *testing.T) {
	doc := []byte(`{"moderator": {"username": "x", "password": "y", "email_address": "e",
		"active": true, "created_at": "2021-01-01T00:00:00Z", "updated_at": "2021-01-01T00:00:00Z",
		"governs": ["cats"]}}`)
	_, err := Decode(doc)
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingFieldError", err)
	}
	if missing.Path != "moderator.promoted_by" {
		t.Fatalf("path = %q", missing.Path)
	}
}

func TestDecode_NestedErrorPath(t *testing.T) {
	doc := []byte(`{"admin": {
		"username": "a", "password": "p", "email_address": "a@x.test", "active": true,
		"created_at": "2021-01-01T00:00:00Z", "updated_at": "2021-06-01T00:00:00Z",
		"promoted_by": {"username": 5}
	}}`)
	_, err := Decode(doc)
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %v, want TypeMismatchError", err)
	}
	if mismatch.Path != "admin.promoted_by.username" {
		t.Fatalf("path = %q", mismatch.Path)
	}
}

func TestTag(t *testing.T) {
	if got := Tag(domain.Admin{}); got != TagAdmin {
		t.Fatalf("Tag(Admin) = %q", got)
	}
	if got := Tag(domain.Moderator{}); got != TagModerator {
		t.Fatalf("Tag(Moderator) = %q", got)
	}
	if got := Tag(domain.BasicUser{}); got != TagBasicUser {
		t.Fatalf("Tag(BasicUser) = %q", got)
	}
}
