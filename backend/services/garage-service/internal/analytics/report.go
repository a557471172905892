package analytics

import (
	"fmt"
	"math"
	"time"
)

// ComponentHealth is one subsystem's slice of a health report. Marker fields
// are nil when the subsystem has no matching service history ("unknown") or
// does not use that basis.
type ComponentHealth struct {
	Name                string     `json:"name"`
	Score               int        `json:"score"`
	Status              Status     `json:"status"`
	LastServiceOdometer *float64   `json:"last_service_odometer,omitempty"`
	NextServiceOdometer *float64   `json:"next_service_odometer,omitempty"`
	LastServiceDate     *time.Time `json:"last_service_date,omitempty"`
	NextServiceDate     *time.Time `json:"next_service_date,omitempty"`
	Recommendations     []string   `json:"recommendations"`
}

// HealthReport is the full assessment for one vehicle at one point in time.
// It is recomputed from scratch on every request and never mutated.
type HealthReport struct {
	VehicleID           int64             `json:"vehicle_id"`
	GeneratedAt         time.Time         `json:"generated_at"`
	OverallScore        int               `json:"overall_score"`
	OverallStatus       Status            `json:"overall_status"`
	Components          []ComponentHealth `json:"components"`
	CriticalIssues      []string          `json:"critical_issues"`
	UpcomingMaintenance []string          `json:"upcoming_maintenance"`
}

// buildReport aggregates component results into the overall score and the
// alert lists. The overall score is the unweighted mean of the rounded
// component scores; alert lists follow component order, not severity.
func buildReport(vehicleID int64, components []ComponentHealth, now time.Time) HealthReport {
	report := HealthReport{
		VehicleID:           vehicleID,
		GeneratedAt:         now,
		Components:          components,
		CriticalIssues:      []string{},
		UpcomingMaintenance: []string{},
	}

	var sum int
	for _, comp := range components {
		sum += comp.Score
		switch comp.Status {
		case StatusCritical:
			report.CriticalIssues = append(report.CriticalIssues,
				fmt.Sprintf("%s requires immediate attention", comp.Name))
		case StatusAttention:
			report.UpcomingMaintenance = append(report.UpcomingMaintenance,
				fmt.Sprintf("%s service needed soon", comp.Name))
		}
	}

	if len(components) > 0 {
		report.OverallScore = int(math.Round(float64(sum) / float64(len(components))))
	}
	report.OverallStatus = StatusForScore(report.OverallScore)

	return report
}
