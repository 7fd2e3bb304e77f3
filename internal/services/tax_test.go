package services

import "testing"

const testCompanyGSTIN = "34AGLPV5711E1ZC"

func TestDetermineTaxRegime_IntraState(t *testing.T) {
	regime := DetermineTaxRegime(testCompanyGSTIN, "34XXXXXXXXXXXXX", 18.0)

	if regime.CGSTPct != 9.0 || regime.SGSTPct != 9.0 {
		t.Fatalf("expected CGST=SGST=9.0, got CGST=%v SGST=%v", regime.CGSTPct, regime.SGSTPct)
	}
	if regime.IGSTPct != 0 {
		t.Fatalf("expected IGST=0 for intra-state, got %v", regime.IGSTPct)
	}
}

func TestDetermineTaxRegime_InterState(t *testing.T) {
	regime := DetermineTaxRegime(testCompanyGSTIN, "27AAACR5055K1Z7", 18.0)

	if regime.CGSTPct != 0 || regime.SGSTPct != 0 {
		t.Fatalf("expected CGST=SGST=0 for inter-state, got CGST=%v SGST=%v", regime.CGSTPct, regime.SGSTPct)
	}
	if regime.IGSTPct != 18.0 {
		t.Fatalf("expected IGST=18.0, got %v", regime.IGSTPct)
	}
}

func TestDetermineTaxRegime_MissingOrMalformedGSTIN(t *testing.T) {
	for _, gstin := range []string{"", "   ", "3"} {
		regime := DetermineTaxRegime(testCompanyGSTIN, gstin, 18.0)
		if regime.IGSTPct != 18.0 || regime.CGSTPct != 0 || regime.SGSTPct != 0 {
			t.Errorf("customer GSTIN %q: expected inter-state treatment, got %+v", gstin, regime)
		}
	}
}

func TestDetermineTaxRegime_ConfiguredRate(t *testing.T) {
	regime := DetermineTaxRegime(testCompanyGSTIN, "34XXXXXXXXXXXXX", 12.0)
	if regime.CGSTPct != 6.0 || regime.SGSTPct != 6.0 || regime.IGSTPct != 0 {
		t.Fatalf("expected 6/6/0 split at 12%% standard rate, got %+v", regime)
	}
}

func TestDetermineTaxRegime_ExclusiveSplit(t *testing.T) {
	// Exactly one of CGST+SGST or IGST may be non-zero, never both.
	for _, gstin := range []string{"34XXXXXXXXXXXXX", "27AAACR5055K1Z7", ""} {
		regime := DetermineTaxRegime(testCompanyGSTIN, gstin, 18.0)
		intra := regime.CGSTPct+regime.SGSTPct > 0
		inter := regime.IGSTPct > 0
		if intra == inter {
			t.Errorf("customer GSTIN %q: regimes not mutually exclusive: %+v", gstin, regime)
		}
	}
}
