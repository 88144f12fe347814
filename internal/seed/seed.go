// Package seed builds the sample fleet used when no data file exists
// yet.
package seed

import (
	"fleet-service/internal/model"
	"fleet-service/internal/store"
)

// Generate returns a freshly populated store: seven vehicles, five
// drivers, six routes, five bookings and five maintenance records,
// with back-references registered through the entity mutators so the
// denormalized sets start out consistent.
func Generate() *store.Store {
	st := store.New()

	vehicles := []model.Vehicle{
		{LicensePlate: "ABC123", Make: "Toyota", Model: "Camry", Year: 2020, Type: model.VehicleTypeSedan, Capacity: 5, FuelEfficiency: 15.5, Odometer: 25000.0, Color: "Blue", Status: model.VehicleStatusAvailable, DailyRate: 50.0, WeeklyRate: 300.0},
		{LicensePlate: "XYZ789", Make: "Ford", Model: "Explorer", Year: 2019, Type: model.VehicleTypeSUV, Capacity: 7, FuelEfficiency: 12.0, Odometer: 35000.0, Color: "Red", Status: model.VehicleStatusAvailable, DailyRate: 60.0, WeeklyRate: 350.0},
		{LicensePlate: "LMN456", Make: "Honda", Model: "Civic", Year: 2021, Type: model.VehicleTypeSedan, Capacity: 5, FuelEfficiency: 18.0, Odometer: 20000.0, Color: "White", Status: model.VehicleStatusMaintenance, DailyRate: 45.0, WeeklyRate: 270.0},
		{LicensePlate: "PQR111", Make: "Ford", Model: "Transit", Year: 2018, Type: model.VehicleTypeVan, Capacity: 8, FuelEfficiency: 10.0, Odometer: 50000.0, Color: "Black", Status: model.VehicleStatusOutOfService, DailyRate: 70.0, WeeklyRate: 400.0},
		{LicensePlate: "STU222", Make: "Yamaha", Model: "R1", Year: 2015, Type: model.VehicleTypeMotorcycle, Capacity: 2, FuelEfficiency: 25.0, Odometer: 10000.0, Color: "Red", Status: model.VehicleStatusAvailable, DailyRate: 30.0, WeeklyRate: 150.0},
		{LicensePlate: "GHI333", Make: "Mercedes", Model: "Sprinter", Year: 2020, Type: model.VehicleTypeTruck, Capacity: 3, FuelEfficiency: 8.0, Odometer: 100000.0, Color: "White", Status: model.VehicleStatusAvailable, DailyRate: 100.0, WeeklyRate: 500.0},
		{LicensePlate: "JKL444", Make: "Tesla", Model: "Model 3", Year: 2022, Type: model.VehicleTypeSedan, Capacity: 5, FuelEfficiency: 20.0, Odometer: 15000.0, Color: "Black", Status: model.VehicleStatusAvailable, DailyRate: 80.0, WeeklyRate: 400.0},
	}
	for _, v := range vehicles {
		v.LicensePlate = model.NormalizePlate(v.LicensePlate)
		st.AddVehicle(v)
	}

	drivers := []model.Driver{
		{FirstName: "John", LastName: "Smith", LicenseNumber: "DL123456789", LicenseExpiryDate: model.Date{Year: 2025, Month: 12, Day: 31}, Address: "123 Main St", Phone: "555-1234", Email: "john.smith@email.com", HireDate: model.Date{Year: 2020, Month: 1, Day: 15}, IsActive: true},
		{FirstName: "Jane", LastName: "Johnson", LicenseNumber: "DL987654321", LicenseExpiryDate: model.Date{Year: 2022, Month: 6, Day: 15}, Address: "789 Pine Rd", Phone: "555-9012", Email: "jane.johnson@email.com", HireDate: model.Date{Year: 2019, Month: 3, Day: 10}, IsActive: true},
		{FirstName: "Michael", LastName: "Brown", LicenseNumber: "DL456789012", LicenseExpiryDate: model.Date{Year: 2023, Month: 9, Day: 20}, Address: "654 Maple Dr", Phone: "555-2345", Email: "michael.brown@email.com", HireDate: model.Date{Year: 2018, Month: 2, Day: 5}, IsActive: true},
		{FirstName: "Sarah", LastName: "Davis", LicenseNumber: "DL789012345", LicenseExpiryDate: model.Date{Year: 2020, Month: 5, Day: 10}, Address: "321 Birch Way", Phone: "555-3456", Email: "sarah.davis@email.com", HireDate: model.Date{Year: 2021, Month: 4, Day: 28}, IsActive: true},
		{FirstName: "David", LastName: "Wilson", LicenseNumber: "DL23456789", LicenseExpiryDate: model.Date{Year: 2019, Month: 8, Day: 15}, Address: "147 Spruce St", Phone: "555-7890", Email: "david.wilson@email.com", HireDate: model.Date{Year: 2022, Month: 2, Day: 28}, IsActive: false},
	}
	for _, d := range drivers {
		st.AddDriver(d)
	}

	routes := []model.Route{
		{Name: "Airport Shuttle", Description: "Shuttle service to airport", Origin: "Downtown", Destination: "Airport", Distance: 25.0, EstimatedTime: 1.0, BaseFare: 15.0},
		{Name: "City Tour", Description: "Sightseeing tour of the city", Origin: "Hotel", Destination: "City Center", Distance: 10.0, EstimatedTime: 2.5, BaseFare: 12.0},
		{Name: "Interstate Express", Description: "Long distance route between cities", Origin: "City A", Destination: "City B", Distance: 500.0, EstimatedTime: 5.5, BaseFare: 50.0},
		{Name: "Shopping Center Route", Description: "Route covering major shopping areas", Origin: "Mall", Destination: "Shopping District", Distance: 15.0, EstimatedTime: 0.5, BaseFare: 10.0},
		{Name: "Airport Return", Description: "Return trip from airport to city", Origin: "Airport", Destination: "Downtown", Distance: 25.0, EstimatedTime: 1.0, BaseFare: 15.0},
		{Name: "Weekend Getaway", Description: "Scenic drive for weekends", Origin: "City Center", Destination: "Countryside", Distance: 30.0, EstimatedTime: 1.5, BaseFare: 20.0},
	}
	for _, r := range routes {
		st.AddRoute(r)
	}

	records := []model.MaintenanceRecord{
		{VehicleID: 1, MaintenanceDate: model.Date{Year: 2023, Month: 5, Day: 15}, Description: "Regular oil change", Cost: 45.00, OdometerReading: 25500, MechanicName: "Mike's Garage", IsWarrantyWork: false},
		{VehicleID: 2, MaintenanceDate: model.Date{Year: 2023, Month: 7, Day: 10}, Description: "Brake pad replacement", Cost: 180.00, OdometerReading: 30000, MechanicName: "Quick Lube", IsWarrantyWork: true},
		{VehicleID: 3, MaintenanceDate: model.Date{Year: 2023, Month: 8, Day: 5}, Description: "Tire rotation and alignment", Cost: 80.00, OdometerReading: 25510, MechanicName: "Tire Plus", IsWarrantyWork: false},
		{VehicleID: 4, MaintenanceDate: model.Date{Year: 2023, Month: 9, Day: 20}, Description: "Engine tune-up", Cost: 120.00, OdometerReading: 25520, MechanicName: "Auto Care Center", IsWarrantyWork: false},
		{VehicleID: 5, MaintenanceDate: model.Date{Year: 2023, Month: 3, Day: 25}, Description: "Transmission service", Cost: 500.00, OdometerReading: 25500, MechanicName: "Transmission Experts", IsWarrantyWork: true},
	}
	for _, r := range records {
		stored, ok := st.AddMaintenanceRecord(r)
		if !ok {
			continue
		}
		if vehicle := st.FindVehicle(stored.VehicleID); vehicle != nil {
			vehicle.AddMaintenanceRecord(stored.ID)
			vehicle.LastMaintenanceDate = stored.MaintenanceDate
		}
	}

	bookings := []model.Booking{
		{VehicleID: 1, DriverID: 1, RouteID: 1, BookingDate: model.Date{Year: 2023, Month: 11, Day: 15}, PickupTime: model.TimeOfDay{Hour: 9, Minute: 0}, ReturnTime: model.TimeOfDay{Hour: 17, Minute: 0}, CustomerName: "John Doe", CustomerPhone: "555-1234", CustomerEmail: "john.doe@email.com", Passengers: 2, TotalAmount: 100.00, Status: model.BookingStatusScheduled, SpecialRequests: "Window seat preference", CreationDate: model.Date{Year: 2023, Month: 10, Day: 20}},
		{VehicleID: 2, DriverID: 2, RouteID: 2, BookingDate: model.Date{Year: 2023, Month: 11, Day: 20}, PickupTime: model.TimeOfDay{Hour: 10, Minute: 30}, ReturnTime: model.TimeOfDay{Hour: 12, Minute: 0}, CustomerName: "Jane Smith", CustomerPhone: "555-5678", CustomerEmail: "jane.smith@email.com", Passengers: 4, TotalAmount: 150.00, Status: model.BookingStatusScheduled, SpecialRequests: "Child seat required", CreationDate: model.Date{Year: 2023, Month: 10, Day: 20}},
		{VehicleID: 3, DriverID: 1, RouteID: 3, BookingDate: model.Date{Year: 2023, Month: 11, Day: 25}, PickupTime: model.TimeOfDay{Hour: 8, Minute: 45}, ReturnTime: model.TimeOfDay{Hour: 13, Minute: 0}, CustomerName: "Robert Johnson", CustomerPhone: "555-9012", CustomerEmail: "robert.johnson@email.com", Passengers: 3, TotalAmount: 120.00, Status: model.BookingStatusCompleted, CreationDate: model.Date{Year: 2023, Month: 11, Day: 20}},
		{VehicleID: 4, DriverID: 4, RouteID: 4, BookingDate: model.Date{Year: 2023, Month: 11, Day: 10}, PickupTime: model.TimeOfDay{Hour: 9, Minute: 15}, ReturnTime: model.TimeOfDay{Hour: 14, Minute: 0}, CustomerName: "Emily Davis", CustomerPhone: "555-3456", CustomerEmail: "emily.davis@email.com", Passengers: 1, TotalAmount: 80.00, Status: model.BookingStatusCompleted, CreationDate: model.Date{Year: 2023, Month: 11, Day: 10}},
		{VehicleID: 5, DriverID: 2, RouteID: 5, BookingDate: model.Date{Year: 2023, Month: 11, Day: 30}, PickupTime: model.TimeOfDay{Hour: 9, Minute: 0}, ReturnTime: model.TimeOfDay{Hour: 15, Minute: 0}, CustomerName: "Michael Brown", CustomerPhone: "555-2345", CustomerEmail: "michael.brown@email.com", Passengers: 1, TotalAmount: 75.00, Status: model.BookingStatusCancelled, SpecialRequests: "Customer requested different time", CreationDate: model.Date{Year: 2023, Month: 11, Day: 5}},
	}
	for _, b := range bookings {
		stored, ok := st.AddBooking(b)
		if !ok {
			continue
		}

		if vehicle := st.FindVehicle(stored.VehicleID); vehicle != nil {
			vehicle.AddBooking(stored.ID)
			// A scheduled booking keeps its vehicle in use.
			if stored.Status == model.BookingStatusScheduled {
				vehicle.Status = model.VehicleStatusInUse
			}
		}
		if driver := st.FindDriver(stored.DriverID); driver != nil {
			driver.AddBooking(stored.ID)
		}
		if route := st.FindRoute(stored.RouteID); route != nil {
			route.AddBooking(stored.ID)
		}
	}

	return st
}
