package domain

// Analysis is the advisory annotation attached to a stored reading. It is
// produced either by the AI analysis call or by the deterministic fallback;
// either way the shape is always fully populated.
type Analysis struct {
	Status     string `json:"status"`
	Suggestion string `json:"suggestion"`
	RiskLevel  int    `json:"riskLevel"`
}
