package database

import (
	"cinebook/internal/bookings"
	"cinebook/internal/movies"
	"cinebook/internal/seats"
	"cinebook/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&movies.Movie{},
		&movies.Showtime{},
		&seats.Seat{},
		&bookings.Booking{},
	)
}

// Reset drops all application tables and recreates them. Used by the
// seed command for a clean reseed.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(
		&bookings.Booking{},
		&seats.Seat{},
		&movies.Showtime{},
		&movies.Movie{},
		&users.User{},
	); err != nil {
		return err
	}
	return Migrate(db)
}
