package seats

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seat is one bookable position within a showtime's fixed grid. The
// composite unique index guarantees one row per (showtime, label) and
// backs the booking conflict check.
type Seat struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShowtimeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_seats_showtime_label" json:"showtime_id"`
	Label      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_seats_showtime_label" json:"label"`
	IsBooked   bool      `gorm:"not null;default:false" json:"is_booked"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

// BeforeCreate assigns a client-side UUID so inserts behave the same
// on every supported database
func (s *Seat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Grid dimensions. Rows A-E, columns 1-8, 40 seats per showtime.
const (
	GridRows    = 5
	GridColumns = 8
)
