package movies

import (
	"context"
	"testing"
	"time"

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

	require.NoError(t, db.AutoMigrate(&Movie{}, &Showtime{}))

	return db
}

func TestListMovies(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	for _, title := range []string{"Interstellar", "Inception"} {
		require.NoError(t, db.Create(&Movie{Title: title, DurationMinutes: 120}).Error)
	}

	list, err := repo.ListMovies(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	count, err := repo.CountMovies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGetMovieByIDWithShowtimes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	movie := Movie{Title: "The Dark Knight", DurationMinutes: 152}
	require.NoError(t, db.Create(&movie).Error)

	base := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	// Insert out of order to exercise the ordering
	for _, offset := range []time.Duration{6 * time.Hour, 0, 3 * time.Hour} {
		require.NoError(t, db.Create(&Showtime{
			MovieID:     movie.ID,
			StartTime:   base.Add(offset),
			TicketPrice: 10.0,
		}).Error)
	}

	got, err := repo.GetMovieByID(context.Background(), movie.ID)
	require.NoError(t, err)

	assert.Equal(t, "The Dark Knight", got.Title)
	require.Len(t, got.Showtimes, 3)
	assert.True(t, got.Showtimes[0].StartTime.Before(got.Showtimes[1].StartTime))
	assert.True(t, got.Showtimes[1].StartTime.Before(got.Showtimes[2].StartTime))
}

func TestGetMovieByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetMovieByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestGetShowtimeByIDPreloadsMovie(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	movie := Movie{Title: "Interstellar", DurationMinutes: 169}
	require.NoError(t, db.Create(&movie).Error)

	showtime := Showtime{
		MovieID:     movie.ID,
		StartTime:   time.Now().Add(2 * time.Hour),
		TicketPrice: 12.0,
	}
	require.NoError(t, db.Create(&showtime).Error)

	got, err := repo.GetShowtimeByID(context.Background(), showtime.ID)
	require.NoError(t, err)

	assert.Equal(t, 12.0, got.TicketPrice)
	require.NotNil(t, got.Movie)
	assert.Equal(t, "Interstellar", got.Movie.Title)
}

func TestGetShowtimeByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetShowtimeByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrShowtimeNotFound)
}
