package seats

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cinebook/internal/movies"

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

	require.NoError(t, db.AutoMigrate(&movies.Movie{}, &movies.Showtime{}, &Seat{}))

	return db
}

func seedGrid(t *testing.T, db *gorm.DB) *movies.Showtime {
	t.Helper()

	movie := movies.Movie{Title: "Inception", DurationMinutes: 148}
	require.NoError(t, db.Create(&movie).Error)

	showtime := movies.Showtime{
		MovieID:     movie.ID,
		StartTime:   time.Now().Add(2 * time.Hour),
		TicketPrice: 10.0,
	}
	require.NoError(t, db.Create(&showtime).Error)

	var grid []Seat
	for r := 0; r < GridRows; r++ {
		row := string(rune('A' + r))
		for c := 1; c <= GridColumns; c++ {
			grid = append(grid, Seat{
				ShowtimeID: showtime.ID,
				Label:      fmt.Sprintf("%s%d", row, c),
			})
		}
	}
	require.NoError(t, db.Create(&grid).Error)

	return &showtime
}

func TestGetSeatMapGroupsRowsInOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewRepository(db), movies.NewRepository(db))
	showtime := seedGrid(t, db)

	seatMap, err := svc.GetSeatMap(context.Background(), showtime.ID)
	require.NoError(t, err)

	require.NotNil(t, seatMap.Showtime)
	assert.Equal(t, showtime.ID, seatMap.Showtime.ID)
	assert.Equal(t, "Inception", seatMap.Showtime.Movie.Title)

	require.Len(t, seatMap.Rows, GridRows)
	for i, row := range seatMap.Rows {
		assert.Equal(t, string(rune('A'+i)), row.Row)
		require.Len(t, row.Seats, GridColumns)
		for j, seat := range row.Seats {
			assert.Equal(t, fmt.Sprintf("%s%d", row.Row, j+1), seat.Label)
			assert.False(t, seat.IsBooked)
		}
	}
}

func TestGetSeatMapReflectsBookedSeats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewRepository(db), movies.NewRepository(db))
	showtime := seedGrid(t, db)

	err := db.Model(&Seat{}).
		Where("showtime_id = ? AND label IN ?", showtime.ID, []string{"A1", "C5"}).
		Update("is_booked", true).Error
	require.NoError(t, err)

	seatMap, err := svc.GetSeatMap(context.Background(), showtime.ID)
	require.NoError(t, err)

	assert.True(t, seatMap.Rows[0].Seats[0].IsBooked)  // A1
	assert.True(t, seatMap.Rows[2].Seats[4].IsBooked)  // C5
	assert.False(t, seatMap.Rows[0].Seats[1].IsBooked) // A2
}

func TestGetSeatMapUnknownShowtime(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewRepository(db), movies.NewRepository(db))

	_, err := svc.GetSeatMap(context.Background(), uuid.New())
	assert.ErrorIs(t, err, movies.ErrShowtimeNotFound)
}

func TestCountBookedSeats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	showtime := seedGrid(t, db)

	count, err := repo.CountBookedSeats(context.Background(), showtime.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	err = db.Model(&Seat{}).
		Where("showtime_id = ? AND label IN ?", showtime.ID, []string{"B1", "B2", "B3"}).
		Update("is_booked", true).Error
	require.NoError(t, err)

	count, err = repo.CountBookedSeats(context.Background(), showtime.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
