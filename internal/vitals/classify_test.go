package vitals

import "testing"

func TestClassifyBloodSugarBoundaries(t *testing.T) {
	cases := []struct {
		value      int
		status     string
		statusType string
	}{
		{20, StatusLow, TypeElevated},
		{65, StatusLow, TypeElevated},
		{69, StatusLow, TypeElevated},
		{70, StatusBorderlineLow, TypeElevated},
		{79, StatusBorderlineLow, TypeElevated},
		{80, StatusNormal, TypeNormal},
		{130, StatusNormal, TypeNormal},
		{131, StatusElevated, TypeElevated},
		{180, StatusElevated, TypeElevated},
		{181, StatusHigh, TypeElevated},
		{600, StatusHigh, TypeElevated},
	}
	for _, tc := range cases {
		got := ClassifyBloodSugar(tc.value)
		if got.Status != tc.status || got.StatusType != tc.statusType {
			t.Errorf("ClassifyBloodSugar(%d) = %+v, want {%s %s}", tc.value, got, tc.status, tc.statusType)
		}
	}
}

func TestClassifyBloodSugarTotal(t *testing.T) {
	// Every in-domain value must land in exactly one branch, and the normal
	// category must cover (79, 130] only.
	for v := SugarMin; v <= SugarMax; v++ {
		got := ClassifyBloodSugar(v)
		if got.Status == "" || got.StatusType == "" {
			t.Fatalf("ClassifyBloodSugar(%d) returned empty result", v)
		}
		wantNormal := v >= 80 && v <= 130
		if (got.StatusType == TypeNormal) != wantNormal {
			t.Fatalf("ClassifyBloodSugar(%d).StatusType = %q, normal expected: %v", v, got.StatusType, wantNormal)
		}
	}
}

func TestClassifyBloodSugarPure(t *testing.T) {
	a := ClassifyBloodSugar(125)
	b := ClassifyBloodSugar(125)
	if a != b {
		t.Fatalf("classification not deterministic: %+v vs %+v", a, b)
	}
}

func TestClassifyBloodPressureBoundaries(t *testing.T) {
	cases := []struct {
		systolic, diastolic int
		status              string
		statusType          string
	}{
		{89, 80, StatusLow, TypeElevated},
		{120, 59, StatusLow, TypeElevated},
		{90, 60, StatusNormal, TypeNormal},
		{119, 79, StatusNormal, TypeNormal},
		{120, 79, StatusElevated, TypeElevated},
		{125, 78, StatusElevated, TypeElevated},
		{129, 79, StatusElevated, TypeElevated},
		{130, 79, StatusHypertension1, TypeElevated},
		{139, 89, StatusHypertension1, TypeElevated},
		{120, 89, StatusHypertension1, TypeElevated},
		// Inherited quirk: the Stage 1 OR condition also matches pairs a
		// clinician would grade higher.
		{135, 125, StatusHypertension1, TypeElevated},
		{179, 119, StatusHypertension2, TypeElevated},
		{140, 119, StatusHypertension2, TypeElevated},
		{200, 90, StatusHypertension2, TypeElevated},
		{180, 120, StatusCrisis, TypeElevated},
		{250, 150, StatusCrisis, TypeElevated},
	}
	for _, tc := range cases {
		got := ClassifyBloodPressure(tc.systolic, tc.diastolic)
		if got.Status != tc.status || got.StatusType != tc.statusType {
			t.Errorf("ClassifyBloodPressure(%d, %d) = %+v, want {%s %s}",
				tc.systolic, tc.diastolic, got, tc.status, tc.statusType)
		}
	}
}

func TestClassifyBloodPressureTotal(t *testing.T) {
	for s := SystolicMin; s <= SystolicMax; s++ {
		for d := DiastolicMin; d <= DiastolicMax; d++ {
			got := ClassifyBloodPressure(s, d)
			if got.Status == "" || got.StatusType == "" {
				t.Fatalf("ClassifyBloodPressure(%d, %d) returned empty result", s, d)
			}
			wantNormal := s >= 90 && s < 120 && d >= 60 && d < 80
			if (got.StatusType == TypeNormal) != wantNormal {
				t.Fatalf("ClassifyBloodPressure(%d, %d).StatusType = %q, normal expected: %v",
					s, d, got.StatusType, wantNormal)
			}
		}
	}
}

func TestSugarFallbackRisk(t *testing.T) {
	cases := []struct {
		value, want int
	}{
		{65, 70}, {69, 70}, {181, 70}, {400, 70},
		{70, 40}, {79, 40}, {141, 40}, {180, 40},
		{80, 10}, {100, 10}, {140, 10},
	}
	for _, tc := range cases {
		if got := SugarFallbackRisk(tc.value); got != tc.want {
			t.Errorf("SugarFallbackRisk(%d) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestPressureFallbackRisk(t *testing.T) {
	cases := []struct {
		systolic, diastolic, want int
	}{
		{141, 80, 70}, {120, 91, 70}, {200, 120, 70},
		{121, 80, 40}, {120, 81, 40}, {140, 90, 40},
		{120, 80, 10}, {110, 70, 10},
	}
	for _, tc := range cases {
		if got := PressureFallbackRisk(tc.systolic, tc.diastolic); got != tc.want {
			t.Errorf("PressureFallbackRisk(%d, %d) = %d, want %d", tc.systolic, tc.diastolic, got, tc.want)
		}
	}
}
