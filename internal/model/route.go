package model

type Route struct {
	ID            int
	Name          string
	Description   string
	Origin        string
	Destination   string
	Distance      float64 // km
	EstimatedTime float64 // hours
	BaseFare      float64
	BookingIDs    []int
}

func (r *Route) AddBooking(bookingID int) {
	r.BookingIDs = appendID(r.BookingIDs, bookingID)
}

func (r *Route) RemoveBooking(bookingID int) {
	r.BookingIDs = removeID(r.BookingIDs, bookingID)
}
