package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fleet-service/internal/model"
	"fleet-service/internal/seed"
)

var reportToday = model.Date{Year: 2023, Month: 11, Day: 1}

func TestVehicleReport(t *testing.T) {
	st := seed.Generate()
	var buf bytes.Buffer

	require.NoError(t, Vehicle(&buf, st, 1, reportToday))
	out := buf.String()

	assert.Contains(t, out, "Vehicle Report")
	assert.Contains(t, out, "ABC123")
	assert.Contains(t, out, "Toyota Camry (2020)")
	assert.Contains(t, out, "Regular oil change")
	assert.Contains(t, out, "Total Maintenance Cost: $45.00")
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "Total Revenue: $100.00")
	// Last serviced 2023-05-15, well past the interval.
	assert.Contains(t, out, "WARNING: vehicle needs maintenance")
}

func TestVehicleReportUnknownVehicle(t *testing.T) {
	st := seed.Generate()
	var buf bytes.Buffer
	assert.Error(t, Vehicle(&buf, st, 99, reportToday))
}

func TestDriverReport(t *testing.T) {
	st := seed.Generate()
	var buf bytes.Buffer

	require.NoError(t, Driver(&buf, st, 2, reportToday))
	out := buf.String()

	assert.Contains(t, out, "Driver Report")
	assert.Contains(t, out, "Jane Johnson")
	assert.Contains(t, out, "EXPIRED")
	assert.Contains(t, out, "Booking Status Distribution:")
}

func TestMonthlyBookingsReport(t *testing.T) {
	st := seed.Generate()
	var buf bytes.Buffer

	require.NoError(t, MonthlyBookings(&buf, st, 2023, 11))
	out := buf.String()

	assert.Contains(t, out, "Total Bookings: 5")
	assert.Contains(t, out, "Total Revenue: $525.00")
	assert.Contains(t, out, "Scheduled: 2")
	assert.Contains(t, out, "Completed: 2")
	assert.Contains(t, out, "Cancelled: 1")
	assert.Contains(t, out, "Vehicle Usage:")
}

func TestMonthlyBookingsReportEmptyMonth(t *testing.T) {
	st := seed.Generate()
	var buf bytes.Buffer

	require.NoError(t, MonthlyBookings(&buf, st, 2020, 1))
	assert.Contains(t, buf.String(), "No bookings found for this month.")
}

func TestSystemReport(t *testing.T) {
	st := seed.Generate()
	var buf bytes.Buffer

	require.NoError(t, System(&buf, st, reportToday))
	out := buf.String()

	assert.Contains(t, out, "Vehicles: 7")
	assert.Contains(t, out, "Sedan: 3")
	assert.Contains(t, out, "Drivers: 5")
	assert.Contains(t, out, "Active Drivers: 4")
	assert.Contains(t, out, "Routes: 6")
	assert.Contains(t, out, "Bookings: 5")
	assert.Contains(t, out, "Total Maintenance Cost: $925.00")
}

func TestExportExcel(t *testing.T) {
	st := seed.Generate()
	path := filepath.Join(t.TempDir(), "fleet.xlsx")

	require.NoError(t, ExportExcel(st, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"Vehicles", "Drivers", "Routes", "Bookings", "Maintenance"},
		f.GetSheetList())

	plate, err := f.GetCellValue("Vehicles", "B2")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", plate)

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	assert.Len(t, rows, 6) // header plus five bookings
}
