package store

import (
	"fleet-service/internal/model"
)

// Collection ceilings. Fixed caps keep storage bounded and
// index-stable.
const (
	MaxVehicles           = 1000
	MaxDrivers            = 500
	MaxRoutes             = 100
	MaxBookings           = 5000
	MaxMaintenanceRecords = 1000
)

// Counters holds the next sequential id per collection. Ids start at 1
// and are never reused after removal; the counters are persisted with
// the collections so a reloaded store continues numbering without
// collisions.
type Counters struct {
	Vehicle           int
	Driver            int
	Route             int
	Booking           int
	MaintenanceRecord int
}

// Store owns the five entity collections. It is not safe for
// concurrent use; the engine assumes a single in-process caller.
type Store struct {
	Vehicles           []model.Vehicle
	Drivers            []model.Driver
	Routes             []model.Route
	Bookings           []model.Booking
	MaintenanceRecords []model.MaintenanceRecord

	NextIDs Counters
}

func New() *Store {
	return &Store{
		NextIDs: Counters{
			Vehicle:           1,
			Driver:            1,
			Route:             1,
			Booking:           1,
			MaintenanceRecord: 1,
		},
	}
}

func (s *Store) NextVehicleID() int {
	id := s.NextIDs.Vehicle
	s.NextIDs.Vehicle++
	return id
}

func (s *Store) NextDriverID() int {
	id := s.NextIDs.Driver
	s.NextIDs.Driver++
	return id
}

func (s *Store) NextRouteID() int {
	id := s.NextIDs.Route
	s.NextIDs.Route++
	return id
}

func (s *Store) NextBookingID() int {
	id := s.NextIDs.Booking
	s.NextIDs.Booking++
	return id
}

func (s *Store) NextMaintenanceRecordID() int {
	id := s.NextIDs.MaintenanceRecord
	s.NextIDs.MaintenanceRecord++
	return id
}

// AddVehicle assigns the next vehicle id and appends, refusing only
// when the collection is at its ceiling. A refused add leaves both the
// collection and the id generator untouched.
func (s *Store) AddVehicle(v model.Vehicle) (*model.Vehicle, bool) {
	if len(s.Vehicles) >= MaxVehicles {
		return nil, false
	}
	v.ID = s.NextVehicleID()
	s.Vehicles = append(s.Vehicles, v)
	return &s.Vehicles[len(s.Vehicles)-1], true
}

func (s *Store) FindVehicle(id int) *model.Vehicle {
	for i := range s.Vehicles {
		if s.Vehicles[i].ID == id {
			return &s.Vehicles[i]
		}
	}
	return nil
}

// RemoveVehicle deletes the first vehicle with the given id. It does
// not clean up bookings that reference the vehicle; dependent booking
// foreign keys are left dangling (see DESIGN.md).
func (s *Store) RemoveVehicle(id int) bool {
	for i := range s.Vehicles {
		if s.Vehicles[i].ID == id {
			s.Vehicles = append(s.Vehicles[:i], s.Vehicles[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) AddDriver(d model.Driver) (*model.Driver, bool) {
	if len(s.Drivers) >= MaxDrivers {
		return nil, false
	}
	d.ID = s.NextDriverID()
	s.Drivers = append(s.Drivers, d)
	return &s.Drivers[len(s.Drivers)-1], true
}

func (s *Store) FindDriver(id int) *model.Driver {
	for i := range s.Drivers {
		if s.Drivers[i].ID == id {
			return &s.Drivers[i]
		}
	}
	return nil
}

func (s *Store) RemoveDriver(id int) bool {
	for i := range s.Drivers {
		if s.Drivers[i].ID == id {
			s.Drivers = append(s.Drivers[:i], s.Drivers[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) AddRoute(r model.Route) (*model.Route, bool) {
	if len(s.Routes) >= MaxRoutes {
		return nil, false
	}
	r.ID = s.NextRouteID()
	s.Routes = append(s.Routes, r)
	return &s.Routes[len(s.Routes)-1], true
}

func (s *Store) FindRoute(id int) *model.Route {
	for i := range s.Routes {
		if s.Routes[i].ID == id {
			return &s.Routes[i]
		}
	}
	return nil
}

func (s *Store) RemoveRoute(id int) bool {
	for i := range s.Routes {
		if s.Routes[i].ID == id {
			s.Routes = append(s.Routes[:i], s.Routes[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) AddBooking(b model.Booking) (*model.Booking, bool) {
	if len(s.Bookings) >= MaxBookings {
		return nil, false
	}
	b.ID = s.NextBookingID()
	s.Bookings = append(s.Bookings, b)
	return &s.Bookings[len(s.Bookings)-1], true
}

func (s *Store) FindBooking(id int) *model.Booking {
	for i := range s.Bookings {
		if s.Bookings[i].ID == id {
			return &s.Bookings[i]
		}
	}
	return nil
}

func (s *Store) RemoveBooking(id int) bool {
	for i := range s.Bookings {
		if s.Bookings[i].ID == id {
			s.Bookings = append(s.Bookings[:i], s.Bookings[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) AddMaintenanceRecord(r model.MaintenanceRecord) (*model.MaintenanceRecord, bool) {
	if len(s.MaintenanceRecords) >= MaxMaintenanceRecords {
		return nil, false
	}
	r.ID = s.NextMaintenanceRecordID()
	s.MaintenanceRecords = append(s.MaintenanceRecords, r)
	return &s.MaintenanceRecords[len(s.MaintenanceRecords)-1], true
}

func (s *Store) FindMaintenanceRecord(id int) *model.MaintenanceRecord {
	for i := range s.MaintenanceRecords {
		if s.MaintenanceRecords[i].ID == id {
			return &s.MaintenanceRecords[i]
		}
	}
	return nil
}

func (s *Store) RemoveMaintenanceRecord(id int) bool {
	for i := range s.MaintenanceRecords {
		if s.MaintenanceRecords[i].ID == id {
			s.MaintenanceRecords = append(s.MaintenanceRecords[:i], s.MaintenanceRecords[i+1:]...)
			return true
		}
	}
	return false
}
