// Package vitals classifies raw blood-sugar and blood-pressure measurements
// into the advisory status labels the rest of the service builds on. The
// threshold tables are fixed range checks; they claim no clinical nuance.
package vitals

// Status labels.
const (
	StatusLow           = "Low"
	StatusBorderlineLow = "Borderline Low"
	StatusNormal        = "Normal"
	StatusElevated      = "Elevated"
	StatusHigh          = "High"
	StatusHypertension1 = "Hypertension Stage 1"
	StatusHypertension2 = "Hypertension Stage 2"
	StatusCrisis        = "Hypertensive Crisis"
)

// Status categories.
const (
	TypeNormal   = "normal"
	TypeElevated = "elevated"
)

// Domain bounds. Values outside these ranges are rejected before
// classification ever runs.
const (
	SugarMin     = 20
	SugarMax     = 600
	SystolicMin  = 70
	SystolicMax  = 250
	DiastolicMin = 40
	DiastolicMax = 150
)

// StatusResult is the deterministic classification of one measurement.
type StatusResult struct {
	Status     string `json:"status"`
	StatusType string `json:"statusType"`
}

// ClassifyBloodSugar maps a value in mg/dL onto a status. First match wins.
func ClassifyBloodSugar(value int) StatusResult {
	switch {
	case value < 70:
		return StatusResult{Status: StatusLow, StatusType: TypeElevated}
	case value < 80:
		return StatusResult{Status: StatusBorderlineLow, StatusType: TypeElevated}
	case value <= 130:
		return StatusResult{Status: StatusNormal, StatusType: TypeNormal}
	case value <= 180:
		return StatusResult{Status: StatusElevated, StatusType: TypeElevated}
	default:
		return StatusResult{Status: StatusHigh, StatusType: TypeElevated}
	}
}

// ClassifyBloodPressure maps a systolic/diastolic pair onto a status. First
// match wins. The OR conditions on the Stage 1/Stage 2 rows swallow pairs
// that common clinical convention would grade higher (135/125 reads as
// Stage 1); that quirk is inherited from the app this service replaces and
// is kept as-is.
func ClassifyBloodPressure(systolic, diastolic int) StatusResult {
	switch {
	case systolic < 90 || diastolic < 60:
		return StatusResult{Status: StatusLow, StatusType: TypeElevated}
	case systolic < 120 && diastolic < 80:
		return StatusResult{Status: StatusNormal, StatusType: TypeNormal}
	case systolic < 130 && diastolic < 80:
		return StatusResult{Status: StatusElevated, StatusType: TypeElevated}
	case systolic < 140 || diastolic < 90:
		return StatusResult{Status: StatusHypertension1, StatusType: TypeElevated}
	case systolic < 180 || diastolic < 120:
		return StatusResult{Status: StatusHypertension2, StatusType: TypeElevated}
	default:
		return StatusResult{Status: StatusCrisis, StatusType: TypeElevated}
	}
}

// SugarFallbackRisk is the deterministic risk level used when AI analysis is
// unavailable for a blood-sugar reading.
func SugarFallbackRisk(value int) int {
	if value > 180 || value < 70 {
		return 70
	}
	if value > 140 || value < 80 {
		return 40
	}
	return 10
}

// PressureFallbackRisk is the deterministic risk level used when AI analysis
// is unavailable for a blood-pressure reading.
func PressureFallbackRisk(systolic, diastolic int) int {
	if systolic > 140 || diastolic > 90 {
		return 70
	}
	if systolic > 120 || diastolic > 80 {
		return 40
	}
	return 10
}
