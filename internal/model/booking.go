package model

type BookingStatus string

const (
	BookingStatusScheduled  BookingStatus = "SCHEDULED"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
	BookingStatusNoShow     BookingStatus = "NO_SHOW"
)

func (s BookingStatus) Label() string {
	switch s {
	case BookingStatusScheduled:
		return "Scheduled"
	case BookingStatusInProgress:
		return "In Progress"
	case BookingStatusCompleted:
		return "Completed"
	case BookingStatusCancelled:
		return "Cancelled"
	case BookingStatusNoShow:
		return "No Show"
	default:
		return "Unknown"
	}
}

type Booking struct {
	ID              int
	VehicleID       int
	DriverID        int
	RouteID         int // 0 when the booking references no route
	BookingDate     Date
	PickupTime      TimeOfDay
	ReturnTime      TimeOfDay
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	Passengers      int
	TotalAmount     float64
	Status          BookingStatus
	SpecialRequests string
	CreationDate    Date
}

func (b *Booking) IsToday(today Date) bool {
	return b.BookingDate.Equal(today)
}

func (b *Booking) IsPast(today Date) bool {
	return !b.BookingDate.After(today)
}

func (b *Booking) IsFuture(today Date) bool {
	return !b.IsToday(today) && !b.IsPast(today)
}
