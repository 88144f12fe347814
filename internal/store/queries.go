package store

import (
	"strings"

	"fleet-service/internal/model"
)

func (s *Store) VehiclesByType(t model.VehicleType) []*model.Vehicle {
	var result []*model.Vehicle
	for i := range s.Vehicles {
		if s.Vehicles[i].Type == t {
			result = append(result, &s.Vehicles[i])
		}
	}
	return result
}

func (s *Store) VehiclesByStatus(status model.VehicleStatus) []*model.Vehicle {
	var result []*model.Vehicle
	for i := range s.Vehicles {
		if s.Vehicles[i].Status == status {
			result = append(result, &s.Vehicles[i])
		}
	}
	return result
}

func (s *Store) SearchDriversByName(name string) []*model.Driver {
	var result []*model.Driver
	needle := strings.ToLower(name)
	for i := range s.Drivers {
		if strings.Contains(strings.ToLower(s.Drivers[i].FullName()), needle) {
			result = append(result, &s.Drivers[i])
		}
	}
	return result
}

func (s *Store) ActiveDrivers() []*model.Driver {
	var result []*model.Driver
	for i := range s.Drivers {
		if s.Drivers[i].IsActive {
			result = append(result, &s.Drivers[i])
		}
	}
	return result
}

func (s *Store) SearchRoutesByOrigin(origin string) []*model.Route {
	var result []*model.Route
	needle := strings.ToLower(origin)
	for i := range s.Routes {
		if strings.Contains(strings.ToLower(s.Routes[i].Origin), needle) {
			result = append(result, &s.Routes[i])
		}
	}
	return result
}

func (s *Store) SearchRoutesByDestination(destination string) []*model.Route {
	var result []*model.Route
	needle := strings.ToLower(destination)
	for i := range s.Routes {
		if strings.Contains(strings.ToLower(s.Routes[i].Destination), needle) {
			result = append(result, &s.Routes[i])
		}
	}
	return result
}

func (s *Store) BookingsByVehicle(vehicleID int) []*model.Booking {
	var result []*model.Booking
	for i := range s.Bookings {
		if s.Bookings[i].VehicleID == vehicleID {
			result = append(result, &s.Bookings[i])
		}
	}
	return result
}

func (s *Store) BookingsByDriver(driverID int) []*model.Booking {
	var result []*model.Booking
	for i := range s.Bookings {
		if s.Bookings[i].DriverID == driverID {
			result = append(result, &s.Bookings[i])
		}
	}
	return result
}

func (s *Store) BookingsByRoute(routeID int) []*model.Booking {
	var result []*model.Booking
	for i := range s.Bookings {
		if s.Bookings[i].RouteID == routeID {
			result = append(result, &s.Bookings[i])
		}
	}
	return result
}

func (s *Store) BookingsByDate(date model.Date) []*model.Booking {
	var result []*model.Booking
	for i := range s.Bookings {
		if s.Bookings[i].BookingDate.Equal(date) {
			result = append(result, &s.Bookings[i])
		}
	}
	return result
}

func (s *Store) BookingsToday(today model.Date) []*model.Booking {
	var result []*model.Booking
	for i := range s.Bookings {
		if s.Bookings[i].IsToday(today) {
			result = append(result, &s.Bookings[i])
		}
	}
	return result
}

// PastBookings includes bookings dated today.
func (s *Store) PastBookings(today model.Date) []*model.Booking {
	var result []*model.Booking
	for i := range s.Bookings {
		if s.Bookings[i].IsPast(today) {
			result = append(result, &s.Bookings[i])
		}
	}
	return result
}

func (s *Store) UpcomingBookings(today model.Date) []*model.Booking {
	var result []*model.Booking
	for i := range s.Bookings {
		if s.Bookings[i].IsFuture(today) {
			result = append(result, &s.Bookings[i])
		}
	}
	return result
}

func (s *Store) BookingsByStatus(status model.BookingStatus) []*model.Booking {
	var result []*model.Booking
	for i := range s.Bookings {
		if s.Bookings[i].Status == status {
			result = append(result, &s.Bookings[i])
		}
	}
	return result
}

func (s *Store) MaintenanceRecordsByVehicle(vehicleID int) []*model.MaintenanceRecord {
	var result []*model.MaintenanceRecord
	for i := range s.MaintenanceRecords {
		if s.MaintenanceRecords[i].VehicleID == vehicleID {
			result = append(result, &s.MaintenanceRecords[i])
		}
	}
	return result
}

// MaintenanceRecordsByDateRange returns records with start <= date <= end.
func (s *Store) MaintenanceRecordsByDateRange(start, end model.Date) []*model.MaintenanceRecord {
	var result []*model.MaintenanceRecord
	for i := range s.MaintenanceRecords {
		d := s.MaintenanceRecords[i].MaintenanceDate
		if !d.Before(start) && !d.After(end) {
			result = append(result, &s.MaintenanceRecords[i])
		}
	}
	return result
}
