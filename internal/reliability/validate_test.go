package reliability

import "testing"

func TestCheckConsistency(t *testing.T) {
	records := []Record{
		// Consistent: 300 / 1.5 = 200
		{State: "TX", Year: 2020, SAIDI: 300, SAIFI: 1.5, CAIDI: 200},
		// Within 5% tolerance: expected 200, reported 205
		{State: "NY", Year: 2020, SAIDI: 300, SAIFI: 1.5, CAIDI: 205},
		// Way off: expected 200, reported 400
		{State: "CA", Year: 2020, SAIDI: 300, SAIFI: 1.5, CAIDI: 400},
		// Zero SAIFI: skipped, CAIDI not meaningful
		{State: "VT", Year: 2020, SAIDI: 0, SAIFI: 0, CAIDI: 50},
	}

	issues := CheckConsistency(records, 0.05)
	if len(issues) != 1 {
		t.Fatalf("Expected 1 issue, got %d: %+v", len(issues), issues)
	}
	if issues[0].Record.State != "CA" {
		t.Errorf("Flagged %s, want CA", issues[0].Record.State)
	}
	if issues[0].Expected != 200 {
		t.Errorf("Expected CAIDI = %v, want 200", issues[0].Expected)
	}
	if issues[0].RelError != 1.0 {
		t.Errorf("RelError = %v, want 1.0", issues[0].RelError)
	}
}

func TestCheckConsistencyDoesNotCorrect(t *testing.T) {
	records := []Record{
		{State: "CA", Year: 2020, SAIDI: 300, SAIFI: 1.5, CAIDI: 400},
	}

	issues := CheckConsistency(records, 0.05)
	if len(issues) != 1 {
		t.Fatalf("Expected 1 issue, got %d", len(issues))
	}
	// The flagged record keeps its reported CAIDI
	if issues[0].Record.CAIDI != 400 {
		t.Errorf("Record.CAIDI = %v, want the reported 400", issues[0].Record.CAIDI)
	}
	if records[0].CAIDI != 400 {
		t.Errorf("Input record mutated: CAIDI = %v", records[0].CAIDI)
	}
}
