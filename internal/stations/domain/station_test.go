package stations

import (
	"errors"
	"testing"
)

func TestPowerTierProfiles(t *testing.T) {
	cases := []struct {
		tier  PowerTier
		label string
		dc    int
		ac    int
	}{
		{TierHPC, "180 kW", 6, 8},
		{TierDC, "150 kW", 4, 6},
		{TierAC, "50 kW", 2, 4},
	}
	for _, tc := range cases {
		if tc.tier.Label() != tc.label || tc.tier.DCSockets() != tc.dc || tc.tier.ACSockets() != tc.ac {
			t.Fatalf("%s: got %s %d/%d", tc.tier, tc.tier.Label(), tc.tier.DCSockets(), tc.tier.ACSockets())
		}
		tier, err := TierForLabel(tc.label)
		if err != nil || tier != tc.tier {
			t.Fatalf("TierForLabel(%q) = %v, %v", tc.label, tier, err)
		}
	}
	if _, err := TierForLabel("22 kW"); !errors.Is(err, ErrUnknownPower) {
		t.Fatalf("expected ErrUnknownPower, got %v", err)
	}
	if PowerTier(7).IsValid() {
		t.Fatalf("unexpected valid tier")
	}
}

func TestFormatAndParseID(t *testing.T) {
	if got := FormatID(7); got != "ZES0007" {
		t.Fatalf("expected ZES0007, got %s", got)
	}
	if got := FormatID(12345); got != "ZES12345" {
		t.Fatalf("expected ZES12345, got %s", got)
	}
	seq, err := ParseID("ZES0042")
	if err != nil || seq != 42 {
		t.Fatalf("ParseID = %d, %v", seq, err)
	}
	for _, bad := range []string{"", "ZES", "ZES12", "ABC0001", "ZES00x1", "ZES0000"} {
		if _, err := ParseID(bad); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("ParseID(%q): expected ErrInvalidID, got %v", bad, err)
		}
	}
}

func TestNames(t *testing.T) {
	if got := LocationName("X", 1); got != "X" {
		t.Fatalf("first copy: %s", got)
	}
	if got := LocationName("X", 3); got != "X 3. İstasyon" {
		t.Fatalf("third copy: %s", got)
	}
	if got := ComposeName("İstanbul", "Bağcılar", "Bağcılar Meydan AVM"); got != "İstanbul - Bağcılar - Bağcılar Meydan AVM" {
		t.Fatalf("name: %s", got)
	}
	if got := ComposeName("Van", "", "Merkez"); got != "Van - Merkez" {
		t.Fatalf("name without district: %s", got)
	}
	if got := ComposeAddress("İstanbul", "Bağcılar", "Bağcılar Meydan AVM"); got != "Bağcılar Meydan AVM, Bağcılar, İstanbul" {
		t.Fatalf("address: %s", got)
	}
	if got := ComposeAddress("Van", "", "Merkez"); got != "Merkez, Van" {
		t.Fatalf("address without district: %s", got)
	}
	if got := FallbackName("Van", 2); got != "Van - 2. Şarj İstasyonu" {
		t.Fatalf("fallback name: %s", got)
	}
	if got := CityOf("Muğla - Bodrum - Bodrum Merkez"); got != "Muğla" {
		t.Fatalf("city: %s", got)
	}
	if seg, ok := NameSegment("Muğla - Bodrum - Bodrum Merkez", 1); !ok || seg != "Bodrum" {
		t.Fatalf("segment: %q %v", seg, ok)
	}
	if _, ok := NameSegment("Muğla", 1); ok {
		t.Fatalf("expected missing segment")
	}
}

func TestStationValidate(t *testing.T) {
	valid := Station{
		ID:          "ZES0001",
		Name:        "Ankara - Çankaya - Çankaya Kızılay",
		Address:     "Çankaya Kızılay, Çankaya, Ankara",
		Coordinates: Coordinates{Lat: 39.9194, Lng: 32.854},
		DCSockets:   4,
		ACSockets:   6,
		Power:       "150 kW",
		Status:      StatusActive,
		Type:        TypeMall,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid station: %v", err)
	}
	if valid.City() != "Ankara" {
		t.Fatalf("unexpected city %s", valid.City())
	}

	mismatch := valid
	mismatch.DCSockets = 6
	if err := mismatch.Validate(); !errors.Is(err, ErrSocketMismatch) {
		t.Fatalf("expected ErrSocketMismatch, got %v", err)
	}

	badType := valid
	badType.Type = "depot"
	if err := badType.Validate(); !errors.Is(err, ErrInvalidStationType) {
		t.Fatalf("expected ErrInvalidStationType, got %v", err)
	}

	badStatus := valid
	badStatus.Status = "offline"
	if err := badStatus.Validate(); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
