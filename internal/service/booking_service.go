package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"fleet-service/internal/model"
	"fleet-service/internal/store"
)

type BookingService struct {
	store    *store.Store
	logger   zerolog.Logger
	validate *validator.Validate
	today    func() model.Date
}

func NewBookingService(st *store.Store, logger zerolog.Logger) *BookingService {
	return &BookingService{
		store:    st,
		logger:   logger,
		validate: validator.New(),
		today:    model.Today,
	}
}

type ScheduleBookingInput struct {
	VehicleID       int `validate:"required,min=1"`
	DriverID        int `validate:"required,min=1"`
	RouteID         int `validate:"min=0"` // 0 = no route
	BookingDate     model.Date
	PickupTime      model.TimeOfDay
	ReturnTime      model.TimeOfDay
	CustomerName    string  `validate:"required"`
	CustomerPhone   string
	CustomerEmail   string  `validate:"omitempty,email"`
	Passengers      int     `validate:"min=1"`
	TotalAmount     float64 `validate:"min=0"`
	SpecialRequests string
}

// Schedule creates a booking in the Scheduled status, registers its id
// on the vehicle, driver and (when present) route, and marks the
// vehicle InUse. "In use" means "has an outstanding booking", not
// "currently mid-trip".
func (s *BookingService) Schedule(input ScheduleBookingInput) (*model.Booking, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	vehicle := s.store.FindVehicle(input.VehicleID)
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %d", ErrNotFound, input.VehicleID)
	}
	driver := s.store.FindDriver(input.DriverID)
	if driver == nil {
		return nil, fmt.Errorf("%w: driver %d", ErrNotFound, input.DriverID)
	}

	if vehicle.Status != model.VehicleStatusAvailable {
		return nil, fmt.Errorf("%w: vehicle %d is %s", ErrVehicleUnavailable, vehicle.ID, vehicle.Status.Label())
	}

	today := s.today()
	if !driver.IsActive {
		return nil, fmt.Errorf("%w: driver %d is inactive", ErrDriverUnavailable, driver.ID)
	}
	if driver.IsLicenseExpired(today) {
		return nil, fmt.Errorf("%w: driver %d license expired", ErrDriverUnavailable, driver.ID)
	}

	booking := model.Booking{
		VehicleID:       input.VehicleID,
		DriverID:        input.DriverID,
		RouteID:         input.RouteID,
		BookingDate:     input.BookingDate,
		PickupTime:      input.PickupTime,
		ReturnTime:      input.ReturnTime,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		Passengers:      input.Passengers,
		TotalAmount:     input.TotalAmount,
		Status:          model.BookingStatusScheduled,
		SpecialRequests: input.SpecialRequests,
		CreationDate:    today,
	}

	stored, ok := s.store.AddBooking(booking)
	if !ok {
		return nil, fmt.Errorf("%w: bookings", ErrCapacityExceeded)
	}

	vehicle.AddBooking(stored.ID)
	driver.AddBooking(stored.ID)
	if route := s.store.FindRoute(input.RouteID); route != nil {
		route.AddBooking(stored.ID)
	}

	vehicle.Status = model.VehicleStatusInUse

	s.logger.Info().
		Int("booking_id", stored.ID).
		Int("vehicle_id", vehicle.ID).
		Int("driver_id", driver.ID).
		Msg("booking scheduled")

	return stored, nil
}

// Complete marks an InProgress booking Completed and frees the
// vehicle. When the booking references an existing route and a
// positive fuel amount is given, the odometer advances by
// fuel x fuelEfficiency (the fuel-to-distance conversion).
func (s *BookingService) Complete(bookingID int, actualFuelConsumed float64) error {
	booking := s.store.FindBooking(bookingID)
	if booking == nil {
		return fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
	}
	if !CanTransition(booking.Status, model.BookingStatusCompleted) {
		return fmt.Errorf("%w: cannot complete a %s booking", ErrInvalidState, booking.Status.Label())
	}

	booking.Status = model.BookingStatusCompleted

	if vehicle := s.store.FindVehicle(booking.VehicleID); vehicle != nil {
		vehicle.Status = model.VehicleStatusAvailable

		route := s.store.FindRoute(booking.RouteID)
		if route != nil && actualFuelConsumed > 0 {
			vehicle.Odometer += actualFuelConsumed * vehicle.FuelEfficiency
		}
	}

	s.logger.Info().Int("booking_id", bookingID).Msg("booking completed")
	return nil
}

// Cancel moves a Scheduled or InProgress booking to Cancelled and
// frees the vehicle. The reason is logged, not stored.
func (s *BookingService) Cancel(bookingID int, reason string) error {
	booking := s.store.FindBooking(bookingID)
	if booking == nil {
		return fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
	}
	if !CanTransition(booking.Status, model.BookingStatusCancelled) {
		return fmt.Errorf("%w: cannot cancel a %s booking", ErrInvalidState, booking.Status.Label())
	}

	booking.Status = model.BookingStatusCancelled

	if vehicle := s.store.FindVehicle(booking.VehicleID); vehicle != nil {
		vehicle.Status = model.VehicleStatusAvailable
	}

	s.logger.Info().
		Int("booking_id", bookingID).
		Str("reason", reason).
		Msg("booking cancelled")
	return nil
}
