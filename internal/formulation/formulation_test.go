package formulation

import "testing"

func TestHydroByName(t *testing.T) {
	cases := []struct {
		name    string
		wantOK  bool
		wantTyp string
	}{
		{"RunOfRiver", true, "RunOfRiver"},
		{"MonthlyBudget", true, "MonthlyBudget"},
		{"DailyBudget", true, "DailyBudget"},
		{"NotAFormulation", false, ""},
	}
	for _, c := range cases {
		f, ok := HydroByName(c.name)
		if ok != c.wantOK {
			t.Errorf("HydroByName(%q) ok = %v, want %v", c.name, ok, c.wantOK)
			continue
		}
		if ok && f.Name() != c.wantTyp {
			t.Errorf("HydroByName(%q).Name() = %q, want %q", c.name, f.Name(), c.wantTyp)
		}
	}
}

func TestTradeByName(t *testing.T) {
	cases := []struct {
		imports, exports string
		wantOK           bool
		wantName         string
	}{
		{"", "", true, "Disabled"},
		{"Disabled", "Disabled", true, "Disabled"},
		{"PriceNetLoad", "Disabled", true, "PriceNetLoad"},
		{"Disabled", "PriceNetLoad", true, "PriceNetLoad"},
		{"Something", "Else", false, ""},
	}
	for _, c := range cases {
		f, ok := TradeByName(c.imports, c.exports)
		if ok != c.wantOK {
			t.Errorf("TradeByName(%q,%q) ok = %v, want %v", c.imports, c.exports, ok, c.wantOK)
			continue
		}
		if ok && f.Name() != c.wantName {
			t.Errorf("TradeByName(%q,%q).Name() = %q, want %q", c.imports, c.exports, f.Name(), c.wantName)
		}
	}
}

func TestResilienceByName(t *testing.T) {
	if ResilienceByName(false).Name() != "Disabled" {
		t.Error("ResilienceByName(false) should resolve to Disabled")
	}
	if ResilienceByName(true).Name() != "Enabled" {
		t.Error("ResilienceByName(true) should resolve to Enabled")
	}
}
