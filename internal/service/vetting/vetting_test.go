package vetting

import "testing"

func intPtr(v int) *int { return &v }

func TestIsSmallBusiness_BlocklistMatch(t *testing.T) {
	cases := []struct {
		name string
	}{
		{"Starbucks Reserve Roastery"},
		{"McDonald's"},
		{"CVS Pharmacy #4421"},
		{"Trader Joe's"},
		{"DUNKIN DONUTS"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Candidate{Name: tc.name, ReviewCount: 10, PriceLevel: intPtr(0)}
			if IsSmallBusiness(c) {
				t.Fatalf("expected %q to be classified as a chain", tc.name)
			}
		})
	}
}

func TestIsSmallBusiness_ReviewVolume(t *testing.T) {
	c := Candidate{Name: "Joe's Corner Deli", ReviewCount: 9000, PriceLevel: intPtr(0)}
	if IsSmallBusiness(c) {
		t.Fatal("expected massive review count to exclude the record")
	}

	c.ReviewCount = 3000
	if !IsSmallBusiness(c) {
		t.Fatal("expected review count at the threshold to pass")
	}
}

func TestIsSmallBusiness_PriceLevel(t *testing.T) {
	c := Candidate{Name: "Maison Delacroix", ReviewCount: 120, PriceLevel: intPtr(3)}
	if IsSmallBusiness(c) {
		t.Fatal("expected high price tier to exclude the record")
	}

	c.PriceLevel = intPtr(2)
	if !IsSmallBusiness(c) {
		t.Fatal("expected mid price tier to pass")
	}
}

func TestIsSmallBusiness_MissingPriceDefaults(t *testing.T) {
	c := Candidate{Name: "Corner Books", ReviewCount: 40}
	if !IsSmallBusiness(c) {
		t.Fatal("expected missing price tier to default to small/independent")
	}
}

func TestIsSmallBusiness_IndependentClinic(t *testing.T) {
	c := Candidate{Name: "Lakeside Family Clinic", ReviewCount: 40, PriceLevel: intPtr(1)}
	if !IsSmallBusiness(c) {
		t.Fatal("expected independent clinic to pass")
	}
}
