package domain

import (
	"math"
	"testing"
)

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(testCatalog())
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	b, err := Fingerprint(testCatalog())
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if a != b {
		t.Errorf("fingerprint not stable: %s != %s", a, b)
	}

	changed := testCatalog()
	changed[0].Name = "Renamed"
	c, err := Fingerprint(changed)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if c == a {
		t.Error("fingerprint did not change with the catalog")
	}
}

func TestFingerprintRejectsNaN(t *testing.T) {
	catalog := testCatalog()
	nan := math.NaN()
	catalog[0].Data[0].Scales[0].CronbachsAlpha = &nan

	if _, err := Fingerprint(catalog); err == nil {
		t.Error("expected an error for a NaN alpha")
	}
}
