package store

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pmhub/mentor-back/internal/models"
)

// queryTimeout bounds every store call so a wedged database surfaces as an
// error instead of a hung request.
const queryTimeout = 5 * time.Second

// Store wraps the database handle. It is constructed once in main and passed
// down to the handlers and the cron job.
type Store struct {
	db *gorm.DB
}

// Open connects to Postgres, runs migrations and returns the store.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB builds a store around an existing gorm handle. Tests use this
// with an in-memory sqlite database.
func NewWithDB(db *gorm.DB) (*Store, error) {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.Course{},
		&models.Section{},
		&models.PeerMentor{},
		&models.Appointment{},
	)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}
