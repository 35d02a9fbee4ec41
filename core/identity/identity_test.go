package identity

import (
	"context"
	"testing"
)

func TestParseDN_WellFormed(t *testing.T) {

	attributes := ParseDN("CN=harjoitus1.pvarki.fi,O=harjoitus1.pvarki.fi,L=KeskiSuomi,ST=Jyvaskyla,C=FI")

	if got := attributes.CommonName(); got != "harjoitus1.pvarki.fi" {
		t.Fatalf("wrong CN: got %q", got)
	}
	if got := attributes["ST"]; got != "Jyvaskyla" {
		t.Fatalf("wrong ST: got %q", got)
	}
	if got := attributes["C"]; got != "FI" {
		t.Fatalf("wrong C: got %q", got)
	}
}

func TestParseDN_Empty(t *testing.T) {

	attributes := ParseDN("")
	if len(attributes) != 0 {
		t.Fatalf("empty DN should yield empty attributes, got %v", attributes)
	}
	if attributes.CommonName() != "" {
		t.Fatal("empty attributes should have no CN")
	}
}

func TestParseDN_TrailingComma(t *testing.T) {

	attributes := ParseDN("CN=rasenmaeher,O=pvarki,")
	if len(attributes) != 2 {
		t.Fatalf("segments without '=' must be ignored, got %v", attributes)
	}
	if got := attributes.CommonName(); got != "rasenmaeher" {
		t.Fatalf("wrong CN: got %q", got)
	}
}

func TestParseDN_RepeatedKey(t *testing.T) {

	// left-to-right processing, last occurrence wins
	attributes := ParseDN("CN=first,CN=second")
	if got := attributes.CommonName(); got != "second" {
		t.Fatalf("wrong CN: got %q", got)
	}
}

func TestVerifyAuthority(t *testing.T) {

	attributes := ParseDN("CN=rasenmaeher,O=pvarki")
	if err := VerifyAuthority(attributes, "rasenmaeher"); err != nil {
		t.Fatalf("authority caller should be allowed: %v", err)
	}

	if err := VerifyAuthority(attributes, "Rasenmaeher"); err != ErrUnauthorizedOrigin {
		t.Fatal("comparison must be case-sensitive")
	}

	attributes = ParseDN("CN=somebody.else,O=pvarki")
	if err := VerifyAuthority(attributes, "rasenmaeher"); err != ErrUnauthorizedOrigin {
		t.Fatal("non-authority caller should be denied")
	}

	// missing CN fails closed
	if err := VerifyAuthority(Attributes{}, "rasenmaeher"); err != ErrUnauthorizedOrigin {
		t.Fatal("missing CN should be denied")
	}
	if err := VerifyAuthority(Attributes{}, ""); err != ErrUnauthorizedOrigin {
		t.Fatal("missing CN should be denied even for an empty authority CN")
	}
}

func TestAttributesContext(t *testing.T) {

	ctx := context.Background()
	if AttributesFromContext(ctx) != nil {
		t.Fatal("fresh context should have no attributes")
	}

	attributes := ParseDN("CN=rasenmaeher")
	ctx = ContextWithAttributes(ctx, attributes)
	got := AttributesFromContext(ctx)
	if got == nil || got.CommonName() != "rasenmaeher" {
		t.Fatalf("attributes did not round-trip through the context: %v", got)
	}
}
