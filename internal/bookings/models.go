package bookings

import (
	"strings"
	"time"

	"cinebook/internal/movies"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is an immutable record of one user's successful reservation
// of one or more seats for one showtime. Seat labels are stored as a
// comma-joined string in request order.
type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ShowtimeID uuid.UUID `gorm:"type:uuid;index;not null" json:"showtime_id"`
	SeatLabels string    `gorm:"type:text;not null" json:"seat_labels"`
	TotalPrice float64   `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Showtime *movies.Showtime `json:"showtime,omitempty" gorm:"foreignKey:ShowtimeID;constraint:OnDelete:RESTRICT;"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// BeforeCreate assigns a client-side UUID so inserts behave the same
// on every supported database
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// SeatLabelList splits the stored comma-joined labels.
func (b *Booking) SeatLabelList() []string {
	if b.SeatLabels == "" {
		return nil
	}
	return strings.Split(b.SeatLabels, ",")
}

// SeatCount returns the number of seats in the booking.
func (b *Booking) SeatCount() int {
	return len(b.SeatLabelList())
}
