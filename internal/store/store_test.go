package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/model"
)

func TestAddAssignsSequentialIDs(t *testing.T) {
	st := New()

	first, ok := st.AddVehicle(model.Vehicle{LicensePlate: "ABC123"})
	require.True(t, ok)
	second, ok := st.AddVehicle(model.Vehicle{LicensePlate: "XYZ789"})
	require.True(t, ok)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, st.NextIDs.Vehicle)

	driver, ok := st.AddDriver(model.Driver{FirstName: "John"})
	require.True(t, ok)
	assert.Equal(t, 1, driver.ID)
}

func TestIDsNeverReused(t *testing.T) {
	st := New()

	_, ok := st.AddVehicle(model.Vehicle{})
	require.True(t, ok)
	require.True(t, st.RemoveVehicle(1))

	v, ok := st.AddVehicle(model.Vehicle{})
	require.True(t, ok)
	assert.Equal(t, 2, v.ID)
}

func TestRouteCeiling(t *testing.T) {
	st := New()
	for i := 0; i < MaxRoutes; i++ {
		_, ok := st.AddRoute(model.Route{})
		require.True(t, ok)
	}

	// A refused add mutates neither the collection nor the generator.
	_, ok := st.AddRoute(model.Route{})
	assert.False(t, ok)
	assert.Len(t, st.Routes, MaxRoutes)
	assert.Equal(t, MaxRoutes+1, st.NextIDs.Route)
}

func TestFindReturnsNilForMissing(t *testing.T) {
	st := New()
	assert.Nil(t, st.FindVehicle(1))
	assert.Nil(t, st.FindDriver(1))
	assert.Nil(t, st.FindRoute(1))
	assert.Nil(t, st.FindBooking(1))
	assert.Nil(t, st.FindMaintenanceRecord(1))
}

func TestFindReturnsLiveHandle(t *testing.T) {
	st := New()
	_, ok := st.AddVehicle(model.Vehicle{Status: model.VehicleStatusAvailable})
	require.True(t, ok)

	v := st.FindVehicle(1)
	require.NotNil(t, v)
	v.Status = model.VehicleStatusInUse

	assert.Equal(t, model.VehicleStatusInUse, st.FindVehicle(1).Status)
}

func TestRemoveBookingDoesNotCascade(t *testing.T) {
	st := New()
	_, ok := st.AddVehicle(model.Vehicle{Status: model.VehicleStatusAvailable})
	require.True(t, ok)

	booking, ok := st.AddBooking(model.Booking{VehicleID: 1, DriverID: 1, Status: model.BookingStatusScheduled})
	require.True(t, ok)
	st.FindVehicle(1).AddBooking(booking.ID)

	// Removal leaves the vehicle's back-reference dangling.
	require.True(t, st.RemoveBooking(booking.ID))
	assert.Equal(t, []int{1}, st.FindVehicle(1).BookingIDs)
	assert.NotEmpty(t, st.VerifyBackRefs())
}

func TestVerifyBackRefs(t *testing.T) {
	st := New()
	_, ok := st.AddVehicle(model.Vehicle{})
	require.True(t, ok)
	_, ok = st.AddDriver(model.Driver{})
	require.True(t, ok)
	_, ok = st.AddRoute(model.Route{})
	require.True(t, ok)

	booking, ok := st.AddBooking(model.Booking{VehicleID: 1, DriverID: 1, RouteID: 1})
	require.True(t, ok)
	st.FindVehicle(1).AddBooking(booking.ID)
	st.FindDriver(1).AddBooking(booking.ID)
	st.FindRoute(1).AddBooking(booking.ID)

	assert.Empty(t, st.VerifyBackRefs())

	st.FindDriver(1).RemoveBooking(booking.ID)
	problems := st.VerifyBackRefs()
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "driver 1")
}

func newQueryFixture(t *testing.T) *Store {
	t.Helper()
	st := New()

	vehicles := []model.Vehicle{
		{Type: model.VehicleTypeSedan, Status: model.VehicleStatusAvailable},
		{Type: model.VehicleTypeSUV, Status: model.VehicleStatusInUse},
		{Type: model.VehicleTypeSedan, Status: model.VehicleStatusMaintenance},
	}
	for _, v := range vehicles {
		_, ok := st.AddVehicle(v)
		require.True(t, ok)
	}

	drivers := []model.Driver{
		{FirstName: "John", LastName: "Smith", IsActive: true},
		{FirstName: "Jane", LastName: "Johnson", IsActive: false},
	}
	for _, d := range drivers {
		_, ok := st.AddDriver(d)
		require.True(t, ok)
	}

	routes := []model.Route{
		{Origin: "Downtown", Destination: "Airport"},
		{Origin: "Airport", Destination: "Downtown"},
	}
	for _, r := range routes {
		_, ok := st.AddRoute(r)
		require.True(t, ok)
	}

	bookings := []model.Booking{
		{VehicleID: 1, DriverID: 1, RouteID: 1, BookingDate: model.Date{Year: 2023, Month: 11, Day: 15}, Status: model.BookingStatusScheduled},
		{VehicleID: 1, DriverID: 2, RouteID: 2, BookingDate: model.Date{Year: 2023, Month: 11, Day: 20}, Status: model.BookingStatusCompleted},
		{VehicleID: 2, DriverID: 1, RouteID: 1, BookingDate: model.Date{Year: 2023, Month: 11, Day: 15}, Status: model.BookingStatusScheduled},
	}
	for _, b := range bookings {
		_, ok := st.AddBooking(b)
		require.True(t, ok)
	}

	records := []model.MaintenanceRecord{
		{VehicleID: 1, MaintenanceDate: model.Date{Year: 2023, Month: 5, Day: 15}},
		{VehicleID: 1, MaintenanceDate: model.Date{Year: 2023, Month: 8, Day: 5}},
		{VehicleID: 2, MaintenanceDate: model.Date{Year: 2023, Month: 7, Day: 10}},
	}
	for _, r := range records {
		_, ok := st.AddMaintenanceRecord(r)
		require.True(t, ok)
	}

	return st
}

func TestVehicleQueries(t *testing.T) {
	st := newQueryFixture(t)

	assert.Len(t, st.VehiclesByType(model.VehicleTypeSedan), 2)
	assert.Len(t, st.VehiclesByType(model.VehicleTypeBus), 0)
	assert.Len(t, st.VehiclesByStatus(model.VehicleStatusAvailable), 1)
}

func TestDriverQueries(t *testing.T) {
	st := newQueryFixture(t)

	matches := st.SearchDriversByName("john")
	require.Len(t, matches, 2) // John Smith and Jane Johnson
	assert.Len(t, st.SearchDriversByName("smith"), 1)
	assert.Len(t, st.ActiveDrivers(), 1)
}

func TestRouteQueries(t *testing.T) {
	st := newQueryFixture(t)

	assert.Len(t, st.SearchRoutesByOrigin("downtown"), 1)
	assert.Len(t, st.SearchRoutesByDestination("Airport"), 1)
}

func TestBookingQueries(t *testing.T) {
	st := newQueryFixture(t)

	assert.Len(t, st.BookingsByVehicle(1), 2)
	assert.Len(t, st.BookingsByDriver(1), 2)
	assert.Len(t, st.BookingsByRoute(2), 1)
	assert.Len(t, st.BookingsByDate(model.Date{Year: 2023, Month: 11, Day: 15}), 2)
	assert.Len(t, st.BookingsByStatus(model.BookingStatusScheduled), 2)
	assert.Len(t, st.BookingsByStatus(model.BookingStatusCancelled), 0)

	today := model.Date{Year: 2023, Month: 11, Day: 15}
	assert.Len(t, st.BookingsToday(today), 2)
	assert.Len(t, st.PastBookings(today), 2) // today counts as past
	assert.Len(t, st.UpcomingBookings(today), 1)
}

func TestMaintenanceRecordQueries(t *testing.T) {
	st := newQueryFixture(t)

	assert.Len(t, st.MaintenanceRecordsByVehicle(1), 2)

	// Range bounds are inclusive.
	got := st.MaintenanceRecordsByDateRange(
		model.Date{Year: 2023, Month: 5, Day: 15},
		model.Date{Year: 2023, Month: 7, Day: 10},
	)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.NotEqual(t, 2, r.ID, fmt.Sprintf("record %d outside range", r.ID))
	}
}
