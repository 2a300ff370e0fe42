package admin

import (
	"context"
	"testing"
	"time"

	"cinebook/internal/bookings"
	"cinebook/internal/movies"
	"cinebook/internal/seats"
	"cinebook/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&users.User{},
		&movies.Movie{},
		&movies.Showtime{},
		&seats.Seat{},
		&bookings.Booking{},
	))

	return db
}

func TestGetStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(movies.NewRepository(db), bookings.NewRepository(db))

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Movies)
	assert.Equal(t, int64(0), stats.Bookings)

	movie := movies.Movie{Title: "Interstellar", DurationMinutes: 169}
	require.NoError(t, db.Create(&movie).Error)

	showtime := movies.Showtime{
		MovieID:     movie.ID,
		StartTime:   time.Now().Add(2 * time.Hour),
		TicketPrice: 10.0,
	}
	require.NoError(t, db.Create(&showtime).Error)

	booking := bookings.Booking{
		UserID:     uuid.New(),
		ShowtimeID: showtime.ID,
		SeatLabels: "A1",
		TotalPrice: 10.0,
	}
	require.NoError(t, db.Create(&booking).Error)

	stats, err = svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Movies)
	assert.Equal(t, int64(1), stats.Bookings)
}
