package analytics

import (
	"sort"
	"time"

	"gearlog/backend/services/garage-service/internal/models"
)

// DefaultMaxEfficiency is the plausibility ceiling for a derived efficiency
// value. Readings above it almost always mean a mistyped odometer or a unit
// mismatch, so they are discarded rather than surfaced.
const DefaultMaxEfficiency = 100

// FuelSummary aggregates one set of fill-ups. MeanEfficiency is nil when no
// valid efficiency sample exists; callers must not read that as zero.
type FuelSummary struct {
	Logs           []models.FuelLog `json:"logs"`
	MeanEfficiency *float64         `json:"mean_efficiency,omitempty"`
	TotalSpend     float64          `json:"total_spend"`
	FillCount      int              `json:"fill_count"`
	LastFillDate   *time.Time       `json:"last_fill_date,omitempty"`
}

// FuelCalculator derives per-fill efficiency figures and aggregates.
type FuelCalculator struct {
	// MaxEfficiency rejects implausible derivations; zero means the default.
	MaxEfficiency float64
}

// NewFuelCalculator returns a calculator with the default plausibility ceiling.
func NewFuelCalculator() *FuelCalculator {
	return &FuelCalculator{MaxEfficiency: DefaultMaxEfficiency}
}

func (c *FuelCalculator) ceiling() float64 {
	if c.MaxEfficiency > 0 {
		return c.MaxEfficiency
	}
	return DefaultMaxEfficiency
}

// Annotate returns a copy of the input with Efficiency set wherever a clean
// full-tank-to-full-tank interval supports it. The input may mix vehicles and
// arrive in any order: records are partitioned by vehicle and stable-sorted
// by fill date, so date ties keep their input order. Output order matches the
// input.
func (c *FuelCalculator) Annotate(logs []models.FuelLog) []models.FuelLog {
	out := make([]models.FuelLog, len(logs))
	copy(out, logs)

	byVehicle := make(map[int64][]*models.FuelLog)
	for i := range out {
		out[i].Efficiency = nil
		byVehicle[out[i].VehicleID] = append(byVehicle[out[i].VehicleID], &out[i])
	}

	for _, part := range byVehicle {
		sort.SliceStable(part, func(i, j int) bool {
			return part[i].FillDate.Before(part[j].FillDate)
		})

		// The first fill in a partition has no preceding interval, and an
		// interval opened by a partial fill is not a clean tank sample.
		for i := 1; i < len(part); i++ {
			cur, prev := part[i], part[i-1]
			if !cur.IsFullTank || !prev.IsFullTank || cur.FuelAmount <= 0 {
				continue
			}
			eff := (cur.OdometerReading - prev.OdometerReading) / cur.FuelAmount
			if eff <= 0 || eff > c.ceiling() {
				continue
			}
			v := eff
			cur.Efficiency = &v
		}
	}

	return out
}

// Summarize annotates the given fill-ups and aggregates them: arithmetic mean
// of the defined efficiency values, total spend (absent costs add zero), fill
// count and most recent fill date.
func (c *FuelCalculator) Summarize(logs []models.FuelLog) FuelSummary {
	annotated := c.Annotate(logs)
	summary := FuelSummary{
		Logs:      annotated,
		FillCount: len(annotated),
	}

	var sum float64
	var samples int
	for i := range annotated {
		log := &annotated[i]
		if log.Efficiency != nil {
			sum += *log.Efficiency
			samples++
		}
		if log.TotalCost != nil {
			summary.TotalSpend += *log.TotalCost
		}
		if summary.LastFillDate == nil || log.FillDate.After(*summary.LastFillDate) {
			d := log.FillDate
			summary.LastFillDate = &d
		}
	}
	if samples > 0 {
		mean := sum / float64(samples)
		summary.MeanEfficiency = &mean
	}

	return summary
}
