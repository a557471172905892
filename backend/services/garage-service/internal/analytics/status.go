package analytics

import "math"

// Status classifies a health score into a fixed four-tier band. The
// boundaries are a contract shared by every subsystem and the overall score.
type Status string

// Status bands.
const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusAttention Status = "attention"
	StatusCritical  Status = "critical"
)

// StatusForScore maps a final clamped score onto its band.
func StatusForScore(score int) Status {
	switch {
	case score >= 85:
		return StatusExcellent
	case score >= 70:
		return StatusGood
	case score >= 50:
		return StatusAttention
	default:
		return StatusCritical
	}
}

// roundScore clamps a raw score into [0, 100] and rounds it to the nearest
// integer. Raw values outside the range are expected (overdue services push
// scores negative, fresh services past the odometer push them above 100).
func roundScore(raw float64) int {
	if raw < 0 {
		raw = 0
	} else if raw > 100 {
		raw = 100
	}
	return int(math.Round(raw))
}
