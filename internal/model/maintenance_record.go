package model

type MaintenanceRecord struct {
	ID              int
	VehicleID       int
	MaintenanceDate Date
	Description     string
	Cost            float64
	OdometerReading int
	MechanicName    string
	IsWarrantyWork  bool
}
