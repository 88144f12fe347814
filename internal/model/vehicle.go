package model

import "strings"

type VehicleType string

const (
	VehicleTypeSedan      VehicleType = "SEDAN"
	VehicleTypeSUV        VehicleType = "SUV"
	VehicleTypeVan        VehicleType = "VAN"
	VehicleTypeBus        VehicleType = "BUS"
	VehicleTypeTruck      VehicleType = "TRUCK"
	VehicleTypeMotorcycle VehicleType = "MOTORCYCLE"
)

type VehicleStatus string

const (
	VehicleStatusAvailable    VehicleStatus = "AVAILABLE"
	VehicleStatusInUse        VehicleStatus = "IN_USE"
	VehicleStatusMaintenance  VehicleStatus = "MAINTENANCE"
	VehicleStatusOutOfService VehicleStatus = "OUT_OF_SERVICE"
)

func (t VehicleType) Label() string {
	switch t {
	case VehicleTypeSedan:
		return "Sedan"
	case VehicleTypeSUV:
		return "SUV"
	case VehicleTypeVan:
		return "Van"
	case VehicleTypeBus:
		return "Bus"
	case VehicleTypeTruck:
		return "Truck"
	case VehicleTypeMotorcycle:
		return "Motorcycle"
	default:
		return "Unknown"
	}
}

func (s VehicleStatus) Label() string {
	switch s {
	case VehicleStatusAvailable:
		return "Available"
	case VehicleStatusInUse:
		return "In Use"
	case VehicleStatusMaintenance:
		return "Maintenance"
	case VehicleStatusOutOfService:
		return "Out of Service"
	default:
		return "Unknown"
	}
}

type Vehicle struct {
	ID                   int
	LicensePlate         string
	Make                 string
	Model                string
	Year                 int
	Type                 VehicleType
	Capacity             int
	FuelEfficiency       float64 // km per liter
	Odometer             float64
	Color                string
	Status               VehicleStatus
	DailyRate            float64
	WeeklyRate           float64
	LastMaintenanceDate  Date // zero-sentinel means never serviced
	BookingIDs           []int
	MaintenanceRecordIDs []int
}

// MaintenanceIntervalDays is the service interval: a vehicle is due
// once the naive day count since its last service exceeds this.
const MaintenanceIntervalDays = 90

// NeedsMaintenance reports whether the vehicle is due for service:
// never serviced, or past the interval by the 365/30 approximation.
func (v *Vehicle) NeedsMaintenance(today Date) bool {
	if v.LastMaintenanceDate.IsZero() {
		return true
	}
	return DaysBetween(v.LastMaintenanceDate, today) > MaintenanceIntervalDays
}

// NormalizePlate brings a license plate to a single format: trimmed,
// upper-cased, with spaces and dashes removed.
func NormalizePlate(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	return strings.ToUpper(normalized)
}

func (v *Vehicle) AddBooking(bookingID int) {
	v.BookingIDs = appendID(v.BookingIDs, bookingID)
}

func (v *Vehicle) RemoveBooking(bookingID int) {
	v.BookingIDs = removeID(v.BookingIDs, bookingID)
}

func (v *Vehicle) AddMaintenanceRecord(recordID int) {
	v.MaintenanceRecordIDs = appendID(v.MaintenanceRecordIDs, recordID)
}

func (v *Vehicle) RemoveMaintenanceRecord(recordID int) {
	v.MaintenanceRecordIDs = removeID(v.MaintenanceRecordIDs, recordID)
}
