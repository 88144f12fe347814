package store

import (
	"fmt"
	"sort"
)

// VerifyBackRefs recomputes every back-reference set from a full scan
// of the bookings and maintenance records and returns a description of
// each mismatch. An empty result means the denormalized sets are
// consistent. Intended for tests and diagnostics.
func (s *Store) VerifyBackRefs() []string {
	var problems []string

	vehicleBookings := make(map[int][]int)
	driverBookings := make(map[int][]int)
	routeBookings := make(map[int][]int)
	for i := range s.Bookings {
		b := &s.Bookings[i]
		vehicleBookings[b.VehicleID] = append(vehicleBookings[b.VehicleID], b.ID)
		driverBookings[b.DriverID] = append(driverBookings[b.DriverID], b.ID)
		if b.RouteID != 0 {
			routeBookings[b.RouteID] = append(routeBookings[b.RouteID], b.ID)
		}
	}

	vehicleRecords := make(map[int][]int)
	for i := range s.MaintenanceRecords {
		r := &s.MaintenanceRecords[i]
		vehicleRecords[r.VehicleID] = append(vehicleRecords[r.VehicleID], r.ID)
	}

	for i := range s.Vehicles {
		v := &s.Vehicles[i]
		if !sameIDSet(v.BookingIDs, vehicleBookings[v.ID]) {
			problems = append(problems, fmt.Sprintf(
				"vehicle %d: bookingIds %v, bookings referencing it %v",
				v.ID, v.BookingIDs, vehicleBookings[v.ID]))
		}
		if !sameIDSet(v.MaintenanceRecordIDs, vehicleRecords[v.ID]) {
			problems = append(problems, fmt.Sprintf(
				"vehicle %d: maintenanceRecordIds %v, records referencing it %v",
				v.ID, v.MaintenanceRecordIDs, vehicleRecords[v.ID]))
		}
	}
	for i := range s.Drivers {
		d := &s.Drivers[i]
		if !sameIDSet(d.BookingIDs, driverBookings[d.ID]) {
			problems = append(problems, fmt.Sprintf(
				"driver %d: bookingIds %v, bookings referencing it %v",
				d.ID, d.BookingIDs, driverBookings[d.ID]))
		}
	}
	for i := range s.Routes {
		r := &s.Routes[i]
		if !sameIDSet(r.BookingIDs, routeBookings[r.ID]) {
			problems = append(problems, fmt.Sprintf(
				"route %d: bookingIds %v, bookings referencing it %v",
				r.ID, r.BookingIDs, routeBookings[r.ID]))
		}
	}

	return problems
}

func sameIDSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]int(nil), a...)
	bs := append([]int(nil), b...)
	sort.Ints(as)
	sort.Ints(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
