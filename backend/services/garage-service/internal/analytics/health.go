package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"gearlog/backend/services/garage-service/internal/models"
)

// SubsystemFuel is scored from fuel aggregates, not from service history.
const SubsystemFuel = "Fuel System"

// Scoring months are calendar-agnostic 30-day blocks, same as the interval
// tables they divide into.
const monthDays = 30

// SubsystemSpec describes one interval-scored subsystem: the category
// keywords that count as its service, the nominal interval, and the fixed
// recommendation text. Keywords match case-insensitively as substrings of
// the category display name, so the catalog can evolve without touching
// scoring logic.
type SubsystemSpec struct {
	Name      string
	Keywords  []string
	TimeBased bool
	// Interval is in distance units, or in months when TimeBased.
	Interval    float64
	OverdueText string
	// DueFormat takes one %.0f verb: remaining distance, or remaining months.
	DueFormat string
	Advice    []string
}

// DefaultSubsystems returns the interval-scored subsystems in report order.
// Fuel System is absent on purpose: it has no trigger categories.
func DefaultSubsystems() []SubsystemSpec {
	return []SubsystemSpec{
		{
			Name:        "Engine",
			Keywords:    []string{"oil", "filter", "spark"},
			Interval:    5000,
			OverdueText: "Oil change overdue",
			DueFormat:   "Oil change due in %.0f miles",
			Advice: []string{
				"Check air filter condition",
				"Inspect spark plugs if over 30,000 miles",
			},
		},
		{
			Name:        "Transmission",
			Keywords:    []string{"transmission"},
			Interval:    30000,
			OverdueText: "Transmission service overdue",
			DueFormat:   "Transmission service due in %.0f miles",
			Advice: []string{
				"Check transmission fluid level and color",
				"Listen for unusual shifting sounds",
			},
		},
		{
			Name:        "Brakes",
			Keywords:    []string{"brake"},
			Interval:    25000,
			OverdueText: "Brake inspection overdue",
			DueFormat:   "Brake inspection due in %.0f miles",
			Advice: []string{
				"Check brake pad thickness",
				"Inspect brake fluid level and color",
				"Listen for squealing or grinding sounds",
			},
		},
		{
			Name:        "Tires",
			Keywords:    []string{"tire", "rotation"},
			Interval:    7500,
			OverdueText: "Tire rotation overdue",
			DueFormat:   "Tire rotation due in %.0f miles",
			Advice: []string{
				"Check tire pressure monthly",
				"Inspect tread depth and wear patterns",
				"Check for sidewall damage or bulges",
			},
		},
		{
			Name:        "Electrical",
			Keywords:    []string{"battery", "electrical", "alternator"},
			TimeBased:   true,
			Interval:    36,
			OverdueText: "Battery replacement may be needed",
			DueFormat:   "Battery good for %.0f more months",
			Advice: []string{
				"Test battery voltage regularly",
				"Check alternator charging rate",
				"Inspect electrical connections for corrosion",
			},
		},
	}
}

// HealthScorer turns a vehicle's service history and fuel aggregates into a
// health report. It is pure: the current time is an explicit input and the
// same inputs always produce the same report.
type HealthScorer struct {
	Subsystems []SubsystemSpec

	// Fuel System tunables.
	RecentWindow          int     // fill-ups considered for consistency
	BaselineEfficiency    float64 // expected efficiency of a new vehicle
	MinExpectedEfficiency float64 // floor for aged vehicles
	AgePenaltyPerYear     float64 // expected efficiency lost per model year
	NeutralFuelScore      float64 // score when no efficiency sample exists
	ConsistencyBonusCap   float64 // bonus at zero standard deviation
	MinConsistencySamples int
}

// NewHealthScorer returns a scorer with the default subsystem table and
// fuel baseline.
func NewHealthScorer() *HealthScorer {
	return &HealthScorer{
		Subsystems:            DefaultSubsystems(),
		RecentWindow:          10,
		BaselineEfficiency:    35,
		MinExpectedEfficiency: 20,
		AgePenaltyPerYear:     0.5,
		NeutralFuelScore:      75,
		ConsistencyBonusCap:   10,
		MinConsistencySamples: 3,
	}
}

// Report scores every subsystem plus the overall vehicle. A vehicle with no
// history of any kind still yields a complete report: interval subsystems
// assume service is already due (unknown means needs attention), while the
// fuel system falls back to a neutral score because missing fuel data is not
// evidence of neglect.
func (s *HealthScorer) Report(vehicle *models.Vehicle, services []models.MaintenanceLog, fuel FuelSummary, now time.Time) HealthReport {
	odometer := vehicle.Odometer()

	components := make([]ComponentHealth, 0, len(s.Subsystems)+1)
	for _, spec := range s.Subsystems {
		components = append(components, s.scoreInterval(spec, odometer, services, now))
	}
	components = append(components, s.scoreFuelSystem(vehicle, fuel, now))

	return buildReport(vehicle.ID, components, now)
}

func (s *HealthScorer) scoreInterval(spec SubsystemSpec, odometer float64, services []models.MaintenanceLog, now time.Time) ComponentHealth {
	last := latestMatch(services, spec.Keywords)

	// No matching record: assume service is already due.
	since := spec.Interval
	if last != nil {
		if spec.TimeBased {
			since = monthsSince(now, last.ServiceDate)
		} else {
			since = odometer - last.OdometerReading
		}
	}

	score := roundScore(100 - since/spec.Interval*100)

	ch := ComponentHealth{
		Name:            spec.Name,
		Score:           score,
		Status:          StatusForScore(score),
		Recommendations: make([]string, 0, len(spec.Advice)+1),
	}

	if spec.TimeBased {
		if last != nil {
			d := last.ServiceDate
			ch.LastServiceDate = &d
			next := addMonths(last.ServiceDate, spec.Interval)
			ch.NextServiceDate = &next
		} else {
			next := addMonths(now, spec.Interval)
			ch.NextServiceDate = &next
		}
	} else {
		if last != nil {
			odo := last.OdometerReading
			ch.LastServiceOdometer = &odo
			d := last.ServiceDate
			ch.LastServiceDate = &d
			next := last.OdometerReading + spec.Interval
			ch.NextServiceOdometer = &next
		} else {
			next := odometer + spec.Interval
			ch.NextServiceOdometer = &next
		}
	}

	if since > spec.Interval {
		ch.Recommendations = append(ch.Recommendations, spec.OverdueText)
	} else {
		ch.Recommendations = append(ch.Recommendations, fmt.Sprintf(spec.DueFormat, spec.Interval-since))
	}
	ch.Recommendations = append(ch.Recommendations, spec.Advice...)

	return ch
}

func (s *HealthScorer) scoreFuelSystem(vehicle *models.Vehicle, fuel FuelSummary, now time.Time) ComponentHealth {
	expected := s.expectedEfficiency(vehicle.Year, now)

	raw := s.NeutralFuelScore
	if fuel.MeanEfficiency != nil {
		raw = math.Min(100, *fuel.MeanEfficiency/expected*100)
	}

	samples := s.recentSamples(fuel.Logs)
	if len(samples) >= s.MinConsistencySamples {
		raw += math.Max(0, s.ConsistencyBonusCap-stddev(samples))
	}

	score := roundScore(raw)

	ch := ComponentHealth{
		Name:            SubsystemFuel,
		Score:           score,
		Status:          StatusForScore(score),
		LastServiceDate: fuel.LastFillDate,
	}

	if fuel.MeanEfficiency != nil {
		ch.Recommendations = append(ch.Recommendations,
			fmt.Sprintf("Current average efficiency: %.1f", *fuel.MeanEfficiency))
	} else {
		ch.Recommendations = append(ch.Recommendations,
			"No efficiency samples yet; log consecutive full-tank fill-ups")
	}
	ch.Recommendations = append(ch.Recommendations,
		fmt.Sprintf("Expected efficiency: %.1f", expected),
		fmt.Sprintf("Fill-ups analyzed: %d", len(samples)),
	)

	return ch
}

// expectedEfficiency estimates the baseline a vehicle of this age should
// reach, decaying from the new-vehicle baseline down to a floor.
func (s *HealthScorer) expectedEfficiency(modelYear int, now time.Time) float64 {
	age := 0
	if modelYear > 0 && modelYear < now.Year() {
		age = now.Year() - modelYear
	}
	return math.Max(s.MinExpectedEfficiency, s.BaselineEfficiency-s.AgePenaltyPerYear*float64(age))
}

// recentSamples returns the efficiency values of the most recent fill-ups,
// newest first, capped at the configured window.
func (s *HealthScorer) recentSamples(logs []models.FuelLog) []float64 {
	recent := make([]models.FuelLog, len(logs))
	copy(recent, logs)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].FillDate.After(recent[j].FillDate)
	})
	if s.RecentWindow > 0 && len(recent) > s.RecentWindow {
		recent = recent[:s.RecentWindow]
	}

	var samples []float64
	for i := range recent {
		if recent[i].Efficiency != nil {
			samples = append(samples, *recent[i].Efficiency)
		}
	}
	return samples
}

// latestMatch returns the most recent service (by service date, not
// odometer) whose category name contains any of the keywords. An empty or
// missing category name never matches.
func latestMatch(services []models.MaintenanceLog, keywords []string) *models.MaintenanceLog {
	var latest *models.MaintenanceLog
	for i := range services {
		name := strings.ToLower(services[i].CategoryName)
		if name == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(name, strings.ToLower(kw)) {
				if latest == nil || services[i].ServiceDate.After(latest.ServiceDate) {
					latest = &services[i]
				}
				break
			}
		}
	}
	return latest
}

func monthsSince(now, t time.Time) float64 {
	return now.Sub(t).Hours() / 24 / monthDays
}

func addMonths(t time.Time, months float64) time.Time {
	return t.Add(time.Duration(months * monthDays * 24 * float64(time.Hour)))
}

func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}
