package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pmhub/mentor-back/internal/models"
)

func (s *Store) CountAdmins(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Admin{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateAdmin inserts the first (and only) admin row. Fails with
// ErrAdminExists when an admin is already registered.
func (s *Store) CreateAdmin(ctx context.Context, a *models.Admin) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Admin{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAdminExists
		}
		return tx.Create(a).Error
	})
}

func (s *Store) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (s *Store) UpdateAdminPassword(ctx context.Context, username, passwordHash string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Model(&models.Admin{}).
		Where("username = ?", username).
		Update("password", passwordHash).Error
}
