package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gearlog/backend/services/garage-service/internal/models"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testVehicle(odometer float64) *models.Vehicle {
	odo := odometer
	return &models.Vehicle{
		ID:              1,
		UserID:          1,
		Make:            "Honda",
		Model:           "Civic",
		Year:            testNow.Year(),
		FuelType:        "gasoline",
		CurrentOdometer: &odo,
	}
}

func service(category string, d time.Time, odometer float64) models.MaintenanceLog {
	return models.MaintenanceLog{
		VehicleID:       1,
		CategoryName:    category,
		ServiceDate:     d,
		OdometerReading: odometer,
	}
}

func componentByName(t *testing.T, report HealthReport, name string) ComponentHealth {
	t.Helper()
	for _, comp := range report.Components {
		if comp.Name == name {
			return comp
		}
	}
	t.Fatalf("component %q not in report", name)
	return ComponentHealth{}
}

func TestStatusBoundariesAreExact(t *testing.T) {
	cases := []struct {
		score int
		want  Status
	}{
		{100, StatusExcellent},
		{85, StatusExcellent},
		{84, StatusGood},
		{70, StatusGood},
		{69, StatusAttention},
		{50, StatusAttention},
		{49, StatusCritical},
		{0, StatusCritical},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, StatusForScore(tc.score), "score %d", tc.score)
	}
}

func TestReportSingleOilServiceScenario(t *testing.T) {
	scorer := NewHealthScorer()
	services := []models.MaintenanceLog{
		service("Oil Change", testNow.AddDate(0, -2, 0), 46000),
	}

	report := scorer.Report(testVehicle(50000), services, FuelSummary{}, testNow)

	engine := componentByName(t, report, "Engine")
	require.Equal(t, 20, engine.Score) // 100 - (4000/5000)*100
	require.Equal(t, StatusCritical, engine.Status)

	for _, name := range []string{"Transmission", "Brakes", "Tires", "Electrical"} {
		comp := componentByName(t, report, name)
		require.Equal(t, 0, comp.Score, "%s has no matching service", name)
		require.Equal(t, StatusCritical, comp.Status)
	}

	fuel := componentByName(t, report, SubsystemFuel)
	require.Equal(t, 75, fuel.Score, "missing fuel data gets the neutral default")
	require.Equal(t, StatusGood, fuel.Status)

	require.Equal(t, 16, report.OverallScore) // round((20+0+0+0+0+75)/6)
	require.Equal(t, StatusCritical, report.OverallStatus)

	require.Equal(t, []string{
		"Engine requires immediate attention",
		"Transmission requires immediate attention",
		"Brakes requires immediate attention",
		"Tires requires immediate attention",
		"Electrical requires immediate attention",
	}, report.CriticalIssues)
	require.Empty(t, report.UpcomingMaintenance)
}

func TestReportEmptyHistoryIsCritical(t *testing.T) {
	scorer := NewHealthScorer()

	report := scorer.Report(&models.Vehicle{ID: 1, Year: 2020}, nil, FuelSummary{}, testNow)

	require.Equal(t, StatusCritical, report.OverallStatus)
	for _, comp := range report.Components {
		require.GreaterOrEqual(t, comp.Score, 0)
		require.LessOrEqual(t, comp.Score, 100)
		if comp.Name != SubsystemFuel {
			require.Equal(t, 0, comp.Score)
		}
	}
}

func TestScoresAreClamped(t *testing.T) {
	scorer := NewHealthScorer()

	// Service recorded ahead of the current odometer: raw score above 100.
	ahead := []models.MaintenanceLog{
		service("Oil Change", testNow.AddDate(0, 0, -1), 52000),
	}
	report := scorer.Report(testVehicle(50000), ahead, FuelSummary{}, testNow)
	require.Equal(t, 100, componentByName(t, report, "Engine").Score)

	// Far overdue: raw score deeply negative.
	overdue := []models.MaintenanceLog{
		service("Oil Change", testNow.AddDate(-3, 0, 0), 10000),
	}
	report = scorer.Report(testVehicle(50000), overdue, FuelSummary{}, testNow)
	require.Equal(t, 0, componentByName(t, report, "Engine").Score)
}

func TestElectricalScoresByTime(t *testing.T) {
	scorer := NewHealthScorer()
	// 540 days = 18 scoring months = half the 36-month interval.
	services := []models.MaintenanceLog{
		service("Battery Replacement", testNow.Add(-540*24*time.Hour), 40000),
	}

	report := scorer.Report(testVehicle(50000), services, FuelSummary{}, testNow)

	electrical := componentByName(t, report, "Electrical")
	require.Equal(t, 50, electrical.Score)
	require.Equal(t, StatusAttention, electrical.Status)
	require.NotNil(t, electrical.LastServiceDate)
	require.NotNil(t, electrical.NextServiceDate)
	require.Nil(t, electrical.LastServiceOdometer)
}

func TestLatestServiceByDateNotOdometer(t *testing.T) {
	scorer := NewHealthScorer()
	services := []models.MaintenanceLog{
		service("Oil Change", testNow.AddDate(0, -6, 0), 48000),
		// Later date but lower odometer (reading typo); still the last service.
		service("Oil Change", testNow.AddDate(0, -1, 0), 47000),
	}

	report := scorer.Report(testVehicle(50000), services, FuelSummary{}, testNow)

	engine := componentByName(t, report, "Engine")
	require.NotNil(t, engine.LastServiceOdometer)
	require.Equal(t, 47000.0, *engine.LastServiceOdometer)
	require.Equal(t, 40, engine.Score) // 100 - (3000/5000)*100
}

func TestCategoryMatchIsCaseInsensitiveSubstring(t *testing.T) {
	scorer := NewHealthScorer()
	services := []models.MaintenanceLog{
		service("Full Synthetic OIL Service", testNow.AddDate(0, -1, 0), 49000),
		service("TIRE Rotation & Balance", testNow.AddDate(0, -1, 0), 49000),
	}

	report := scorer.Report(testVehicle(50000), services, FuelSummary{}, testNow)

	require.Equal(t, 80, componentByName(t, report, "Engine").Score)
	require.NotEqual(t, 0, componentByName(t, report, "Tires").Score)
}

func TestMissingOdometerAssumesServiceDue(t *testing.T) {
	scorer := NewHealthScorer()

	report := scorer.Report(&models.Vehicle{ID: 1, Year: 2018}, nil, FuelSummary{}, testNow)

	for _, name := range []string{"Engine", "Transmission", "Brakes", "Tires"} {
		require.Equal(t, 0, componentByName(t, report, name).Score)
	}
}

func TestFuelSystemRatioWithConsistencyBonus(t *testing.T) {
	calc := NewFuelCalculator()
	scorer := NewHealthScorer()

	// Four fills, 250 distance on 10 units each: three samples of exactly 25.
	logs := []models.FuelLog{
		fullFill(1, day(0), 10000, 10),
		fullFill(1, day(7), 10250, 10),
		fullFill(1, day(14), 10500, 10),
		fullFill(1, day(21), 10750, 10),
	}
	summary := calc.Summarize(logs)

	report := scorer.Report(testVehicle(10750), nil, summary, testNow)

	fuel := componentByName(t, report, SubsystemFuel)
	// Age zero: expected 35. Ratio 25/35*100 = 71.43, zero deviation adds 10.
	require.Equal(t, 81, fuel.Score)
	require.Equal(t, StatusGood, fuel.Status)
	require.Contains(t, fuel.Recommendations, "Current average efficiency: 25.0")
	require.Contains(t, fuel.Recommendations, "Expected efficiency: 35.0")
	require.Contains(t, fuel.Recommendations, "Fill-ups analyzed: 3")
}

func TestFuelSystemBonusNeedsThreeSamples(t *testing.T) {
	calc := NewFuelCalculator()
	scorer := NewHealthScorer()

	logs := []models.FuelLog{
		fullFill(1, day(0), 10000, 10),
		fullFill(1, day(7), 10250, 10),
		fullFill(1, day(14), 10500, 10),
	}
	summary := calc.Summarize(logs)

	report := scorer.Report(testVehicle(10500), nil, summary, testNow)

	// Two samples: ratio only, no consistency bonus. 25/35*100 = 71.43.
	require.Equal(t, 71, componentByName(t, report, SubsystemFuel).Score)
}

func TestExpectedEfficiencyHasFloor(t *testing.T) {
	scorer := NewHealthScorer()
	vehicle := testVehicle(150000)
	vehicle.Year = testNow.Year() - 40

	report := scorer.Report(vehicle, nil, FuelSummary{}, testNow)

	fuel := componentByName(t, report, SubsystemFuel)
	require.Contains(t, fuel.Recommendations, "Expected efficiency: 20.0")
}

func TestRecommendationsIncludeGapToNextService(t *testing.T) {
	scorer := NewHealthScorer()
	services := []models.MaintenanceLog{
		service("Oil Change", testNow.AddDate(0, -1, 0), 48000),
	}

	report := scorer.Report(testVehicle(50000), services, FuelSummary{}, testNow)

	engine := componentByName(t, report, "Engine")
	require.Contains(t, engine.Recommendations, "Oil change due in 3000 miles")
	require.Contains(t, engine.Recommendations, "Check air filter condition")
	require.NotNil(t, engine.NextServiceOdometer)
	require.Equal(t, 53000.0, *engine.NextServiceOdometer)

	// No brake record: the gap defaults to exactly one interval, which is
	// due-now, not overdue.
	brakes := componentByName(t, report, "Brakes")
	require.Contains(t, brakes.Recommendations, "Brake inspection due in 0 miles")
	require.NotContains(t, brakes.Recommendations, "Brake inspection overdue")
}

func TestOverdueServiceGetsOverdueRecommendation(t *testing.T) {
	scorer := NewHealthScorer()
	services := []models.MaintenanceLog{
		service("Brake Pad Replacement", testNow.AddDate(-2, 0, 0), 24000),
	}

	report := scorer.Report(testVehicle(50000), services, FuelSummary{}, testNow)

	// 26000 miles since the pads, against a 25000-mile interval.
	brakes := componentByName(t, report, "Brakes")
	require.Equal(t, 0, brakes.Score)
	require.Contains(t, brakes.Recommendations, "Brake inspection overdue")
	require.NotContains(t, brakes.Recommendations, "Brake inspection due in 0 miles")
}

func TestEmptyCategoryNameNeverMatches(t *testing.T) {
	scorer := NewHealthScorer()
	services := []models.MaintenanceLog{
		{VehicleID: 1, CategoryName: "", ServiceDate: testNow.AddDate(0, -1, 0), OdometerReading: 49500},
	}

	report := scorer.Report(testVehicle(50000), services, FuelSummary{}, testNow)

	// A record with no category name is ignored, so every interval-scored
	// subsystem stays at the no-history default.
	for _, name := range []string{"Engine", "Transmission", "Brakes", "Tires", "Electrical"} {
		comp := componentByName(t, report, name)
		require.Equal(t, 0, comp.Score, "subsystem %s", name)
		require.Nil(t, comp.LastServiceOdometer, "subsystem %s", name)
		require.Nil(t, comp.LastServiceDate, "subsystem %s", name)
	}
}

func TestReportIsDeterministic(t *testing.T) {
	calc := NewFuelCalculator()
	scorer := NewHealthScorer()
	services := []models.MaintenanceLog{
		service("Oil Change", testNow.AddDate(0, -2, 0), 46000),
		service("Tire Rotation", testNow.AddDate(0, -4, 0), 43000),
	}
	summary := calc.Summarize([]models.FuelLog{
		fullFill(1, day(0), 49000, 10),
		fullFill(1, day(7), 49300, 12),
	})

	first := scorer.Report(testVehicle(50000), services, summary, testNow)
	second := scorer.Report(testVehicle(50000), services, summary, testNow)

	require.Equal(t, first, second)
}
