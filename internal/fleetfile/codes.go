package fleetfile

import "fleet-service/internal/model"

// Integer wire codes for the enums, part of the persisted file
// layout. The typed string constants never leave the process; only
// these codes do.

var vehicleTypeCodes = map[model.VehicleType]int{
	model.VehicleTypeSedan:      1,
	model.VehicleTypeSUV:        2,
	model.VehicleTypeVan:        3,
	model.VehicleTypeBus:        4,
	model.VehicleTypeTruck:      5,
	model.VehicleTypeMotorcycle: 6,
}

var vehicleStatusCodes = map[model.VehicleStatus]int{
	model.VehicleStatusAvailable:    1,
	model.VehicleStatusInUse:        2,
	model.VehicleStatusMaintenance:  3,
	model.VehicleStatusOutOfService: 4,
}

var bookingStatusCodes = map[model.BookingStatus]int{
	model.BookingStatusScheduled:  1,
	model.BookingStatusInProgress: 2,
	model.BookingStatusCompleted:  3,
	model.BookingStatusCancelled:  4,
	model.BookingStatusNoShow:     5,
}

var vehicleTypeFromCode = invert(vehicleTypeCodes)
var vehicleStatusFromCode = invert(vehicleStatusCodes)
var bookingStatusFromCode = invert(bookingStatusCodes)

func invert[T comparable](codes map[T]int) map[int]T {
	inverted := make(map[int]T, len(codes))
	for value, code := range codes {
		inverted[code] = value
	}
	return inverted
}
