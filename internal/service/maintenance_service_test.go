package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/model"
	"fleet-service/internal/store"
)

func newMaintenanceFixture(t *testing.T) (*store.Store, *MaintenanceService) {
	t.Helper()
	st := store.New()
	_, ok := st.AddVehicle(model.Vehicle{
		LicensePlate: "ABC123",
		Status:       model.VehicleStatusMaintenance,
	})
	require.True(t, ok)

	svc := NewMaintenanceService(st, zerolog.Nop())
	svc.today = func() model.Date { return testToday }
	return st, svc
}

func TestNeedsMaintenance(t *testing.T) {
	_, svc := newMaintenanceFixture(t)

	// Never serviced.
	assert.True(t, svc.NeedsMaintenance(&model.Vehicle{}))

	recent := model.Vehicle{LastMaintenanceDate: model.Date{Year: 2023, Month: 10, Day: 1}}
	assert.False(t, svc.NeedsMaintenance(&recent))

	overdue := model.Vehicle{LastMaintenanceDate: model.Date{Year: 2023, Month: 7, Day: 1}}
	assert.True(t, svc.NeedsMaintenance(&overdue))
}

func TestAddRecord(t *testing.T) {
	st, svc := newMaintenanceFixture(t)

	record, err := svc.AddRecord(AddMaintenanceRecordInput{
		VehicleID:       1,
		MaintenanceDate: model.Date{Year: 2023, Month: 10, Day: 20},
		Description:     "Regular oil change",
		Cost:            45.0,
		OdometerReading: 25500,
		MechanicName:    "Mike's Garage",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, record.ID)
	assert.Equal(t, []int{1}, st.FindVehicle(1).MaintenanceRecordIDs)
}

func TestAddRecordUnknownVehicle(t *testing.T) {
	_, svc := newMaintenanceFixture(t)

	_, err := svc.AddRecord(AddMaintenanceRecordInput{
		VehicleID:   99,
		Description: "Brake pad replacement",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddRecordValidation(t *testing.T) {
	_, svc := newMaintenanceFixture(t)

	_, err := svc.AddRecord(AddMaintenanceRecordInput{VehicleID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddRecord(AddMaintenanceRecordInput{
		VehicleID:   1,
		Description: "Tire rotation",
		Cost:        -1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompleteMaintenance(t *testing.T) {
	st, svc := newMaintenanceFixture(t)

	record, err := svc.AddRecord(AddMaintenanceRecordInput{
		VehicleID:   1,
		Description: "Engine tune-up",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Complete(record.ID, 120.0, "Auto Care Center", true))

	got := st.FindMaintenanceRecord(record.ID)
	assert.Equal(t, 120.0, got.Cost)
	assert.Equal(t, "Auto Care Center", got.MechanicName)
	assert.True(t, got.IsWarrantyWork)

	vehicle := st.FindVehicle(1)
	assert.Equal(t, testToday, vehicle.LastMaintenanceDate)
	assert.Equal(t, model.VehicleStatusAvailable, vehicle.Status)
	assert.False(t, svc.NeedsMaintenance(vehicle))
}

func TestCompleteKeepsNonMaintenanceStatus(t *testing.T) {
	st, svc := newMaintenanceFixture(t)
	st.FindVehicle(1).Status = model.VehicleStatusOutOfService

	record, err := svc.AddRecord(AddMaintenanceRecordInput{
		VehicleID:   1,
		Description: "Inspection",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Complete(record.ID, 0, "", false))
	assert.Equal(t, model.VehicleStatusOutOfService, st.FindVehicle(1).Status)
}

func TestCompleteMissingRecord(t *testing.T) {
	_, svc := newMaintenanceFixture(t)
	assert.ErrorIs(t, svc.Complete(42, 0, "", false), ErrNotFound)
}
