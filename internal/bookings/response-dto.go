package bookings

import "time"

// represents a confirmed booking in responses
type BookingResponse struct {
	BookingID  string    `json:"booking_id"`
	ShowtimeID string    `json:"showtime_id"`
	Seats      []string  `json:"seats"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToResponse converts a Booking to its response form.
func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		BookingID:  b.ID.String(),
		ShowtimeID: b.ShowtimeID.String(),
		Seats:      b.SeatLabelList(),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}
