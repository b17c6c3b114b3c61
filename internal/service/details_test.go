package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hearthlocal/local-finder/api/internal/places"
)

type stubDetailer struct {
	details *places.Details
	err     error
}

func (s stubDetailer) Details(ctx context.Context, placeID string) (*places.Details, error) {
	return s.details, s.err
}

func TestDetailsService_Enrichment(t *testing.T) {
	svc := NewDetailsService(stubDetailer{details: &places.Details{
		Name:           "Corner Cafe",
		FormattedPhone: "(201) 555-0123",
		Website:        "http://cornercafe.example/menu?utm_source=gmb&table=4",
	}}, "US")

	resp, err := svc.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PhoneE164 != "+12015550123" {
		t.Fatalf("expected E.164 phone, got %q", resp.PhoneE164)
	}
	if resp.Website != "https://cornercafe.example/menu?table=4" {
		t.Fatalf("expected sanitized website, got %q", resp.Website)
	}
	// The provider's own formatting stays untouched.
	if resp.FormattedPhone != "(201) 555-0123" {
		t.Fatalf("formatted phone must pass through, got %q", resp.FormattedPhone)
	}
}

func TestDetailsService_UnusableValuesLeftAlone(t *testing.T) {
	svc := NewDetailsService(stubDetailer{details: &places.Details{
		Name:           "Corner Cafe",
		FormattedPhone: "call us!",
		Website:        "not a url at all://",
	}}, "US")

	resp, err := svc.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PhoneE164 != "" {
		t.Fatalf("expected empty phone_e164 for junk input, got %q", resp.PhoneE164)
	}
	if resp.Website != "not a url at all://" {
		t.Fatalf("expected original website preserved, got %q", resp.Website)
	}
}

func TestDetailsService_ProviderErrorPropagates(t *testing.T) {
	svc := NewDetailsService(stubDetailer{err: errors.New("upstream down")}, "US")
	if _, err := svc.Get(context.Background(), "p1"); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestSanitizeWebsite(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"cornercafe.example", "https://cornercafe.example"},
		{"http://shop.example/?utm_campaign=x", "https://shop.example/"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := sanitizeWebsite(tc.in); got != tc.want {
			t.Fatalf("sanitizeWebsite(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
