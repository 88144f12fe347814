package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"fleet-service/internal/model"
	"fleet-service/internal/store"
)

type MaintenanceService struct {
	store    *store.Store
	logger   zerolog.Logger
	validate *validator.Validate
	today    func() model.Date
}

func NewMaintenanceService(st *store.Store, logger zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{
		store:    st,
		logger:   logger,
		validate: validator.New(),
		today:    model.Today,
	}
}

// NeedsMaintenance reports whether the vehicle is due for service as
// of today.
func (s *MaintenanceService) NeedsMaintenance(v *model.Vehicle) bool {
	return v.NeedsMaintenance(s.today())
}

type AddMaintenanceRecordInput struct {
	VehicleID       int    `validate:"required,min=1"`
	MaintenanceDate model.Date
	Description     string  `validate:"required"`
	Cost            float64 `validate:"min=0"`
	OdometerReading int     `validate:"min=0"`
	MechanicName    string
	IsWarrantyWork  bool
}

func (s *MaintenanceService) AddRecord(input AddMaintenanceRecordInput) (*model.MaintenanceRecord, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	vehicle := s.store.FindVehicle(input.VehicleID)
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %d", ErrNotFound, input.VehicleID)
	}

	record := model.MaintenanceRecord{
		VehicleID:       input.VehicleID,
		MaintenanceDate: input.MaintenanceDate,
		Description:     input.Description,
		Cost:            input.Cost,
		OdometerReading: input.OdometerReading,
		MechanicName:    input.MechanicName,
		IsWarrantyWork:  input.IsWarrantyWork,
	}

	stored, ok := s.store.AddMaintenanceRecord(record)
	if !ok {
		return nil, fmt.Errorf("%w: maintenance records", ErrCapacityExceeded)
	}

	vehicle.AddMaintenanceRecord(stored.ID)

	s.logger.Info().
		Int("record_id", stored.ID).
		Int("vehicle_id", vehicle.ID).
		Msg("maintenance record added")

	return stored, nil
}

// Complete fills in the mutable fields of a maintenance record, stamps
// the vehicle's last maintenance date with today, and returns a
// vehicle that was parked for Maintenance to Available.
func (s *MaintenanceService) Complete(recordID int, cost float64, mechanicName string, isWarrantyWork bool) error {
	record := s.store.FindMaintenanceRecord(recordID)
	if record == nil {
		return fmt.Errorf("%w: maintenance record %d", ErrNotFound, recordID)
	}

	record.Cost = cost
	record.MechanicName = mechanicName
	record.IsWarrantyWork = isWarrantyWork

	if vehicle := s.store.FindVehicle(record.VehicleID); vehicle != nil {
		vehicle.LastMaintenanceDate = s.today()
		if vehicle.Status == model.VehicleStatusMaintenance {
			vehicle.Status = model.VehicleStatusAvailable
		}
	}

	s.logger.Info().Int("record_id", recordID).Msg("maintenance completed")
	return nil
}
