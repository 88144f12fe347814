package service

import (
	"fleet-service/internal/model"
	"fleet-service/internal/store"
)

// AvailabilityService answers eligibility queries. It holds no state
// of its own: every answer is recomputed from the store.
type AvailabilityService struct {
	store       *store.Store
	maintenance *MaintenanceService
	today       func() model.Date
}

func NewAvailabilityService(st *store.Store, maintenance *MaintenanceService) *AvailabilityService {
	return &AvailabilityService{
		store:       st,
		maintenance: maintenance,
		today:       model.Today,
	}
}

func (s *AvailabilityService) VehiclesByStatus(status model.VehicleStatus) []*model.Vehicle {
	return s.store.VehiclesByStatus(status)
}

func (s *AvailabilityService) VehiclesNeedingMaintenance() []*model.Vehicle {
	var result []*model.Vehicle
	for i := range s.store.Vehicles {
		if s.maintenance.NeedsMaintenance(&s.store.Vehicles[i]) {
			result = append(result, &s.store.Vehicles[i])
		}
	}
	return result
}

func (s *AvailabilityService) ActiveDrivers() []*model.Driver {
	return s.store.ActiveDrivers()
}

func (s *AvailabilityService) DriversWithExpiredLicenses() []*model.Driver {
	var result []*model.Driver
	today := s.today()
	for i := range s.store.Drivers {
		if s.store.Drivers[i].IsLicenseExpired(today) {
			result = append(result, &s.store.Drivers[i])
		}
	}
	return result
}
