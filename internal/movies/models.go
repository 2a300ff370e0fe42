package movies

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Movie is a catalog entry. Movies are created by seeding only.
// IDs are assigned in BeforeCreate so every supported database gets
// the same client-side UUID behavior.
type Movie struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	PosterURL       string    `gorm:"type:varchar(500)" json:"poster_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	Showtimes []Showtime `json:"showtimes,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

// Showtime is a scheduled screening of a movie. A showtime belongs to
// exactly one movie and owns a fixed seat grid.
type Showtime struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MovieID     uuid.UUID `gorm:"type:uuid;index;not null" json:"movie_id"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	TicketPrice float64   `gorm:"not null;default:10.0" json:"ticket_price"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

// TableName sets the table name for Movie
func (Movie) TableName() string {
	return "movies"
}

// TableName sets the table name for Showtime
func (Showtime) TableName() string {
	return "showtimes"
}

// BeforeCreate assigns a client-side UUID so inserts behave the same
// on every supported database
func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate assigns a client-side UUID so inserts behave the same
// on every supported database
func (s *Showtime) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
