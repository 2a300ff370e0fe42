package bookings

// seat booking request payload
type BookSeatsRequest struct {
	Seats []string `json:"seats" binding:"required,min=1,dive,required" validate:"required,min=1,dive,required"`
}
