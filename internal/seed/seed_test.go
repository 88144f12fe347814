package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/model"
)

func TestGenerate(t *testing.T) {
	st := Generate()

	assert.Len(t, st.Vehicles, 7)
	assert.Len(t, st.Drivers, 5)
	assert.Len(t, st.Routes, 6)
	assert.Len(t, st.Bookings, 5)
	assert.Len(t, st.MaintenanceRecords, 5)

	assert.Equal(t, 8, st.NextIDs.Vehicle)
	assert.Equal(t, 6, st.NextIDs.Driver)
	assert.Equal(t, 7, st.NextIDs.Route)
	assert.Equal(t, 6, st.NextIDs.Booking)
	assert.Equal(t, 6, st.NextIDs.MaintenanceRecord)
}

func TestGenerateBackRefsConsistent(t *testing.T) {
	st := Generate()
	assert.Empty(t, st.VerifyBackRefs())
}

func TestGenerateScheduledBookingsHoldVehicles(t *testing.T) {
	st := Generate()

	for i := range st.Bookings {
		b := &st.Bookings[i]
		if b.Status != model.BookingStatusScheduled {
			continue
		}
		vehicle := st.FindVehicle(b.VehicleID)
		require.NotNil(t, vehicle)
		assert.Equal(t, model.VehicleStatusInUse, vehicle.Status)
	}
}

func TestGenerateHasInactiveDriver(t *testing.T) {
	st := Generate()

	driver := st.FindDriver(5)
	require.NotNil(t, driver)
	assert.False(t, driver.IsActive)
}
