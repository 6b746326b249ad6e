package models

// Recommendation severities in increasing order of urgency.
const (
	SeverityGood     = "good"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Recommendation is a severity-tagged diagnostic message attached to a
// triggered health condition.
type Recommendation struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// HealthReport is the scored assessment derived from one snapshot.
// Recommendations keep domain order: CPU, RAM, storage, battery.
type HealthReport struct {
	Score           int              `json:"score"`
	Recommendations []Recommendation `json:"recommendations"`
}
