package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pmhub/mentor-back/internal/models"
)

func (s *Store) CreateSection(ctx context.Context, sec *models.Section) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Where("section = ?", sec.Section).First(&models.Section{}).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.WithContext(ctx).Create(sec).Error
}

func (s *Store) ListSections(ctx context.Context) ([]models.Section, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	sections := []models.Section{}
	if err := s.db.WithContext(ctx).Order("id").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *Store) GetSection(ctx context.Context, id uint) (*models.Section, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var sec models.Section
	if err := s.db.WithContext(ctx).First(&sec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sec, nil
}

func (s *Store) UpdateSection(ctx context.Context, id uint, label string) (*models.Section, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var sec models.Section
	if err := s.db.WithContext(ctx).First(&sec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var dup models.Section
	err := s.db.WithContext(ctx).Where("section = ? AND id <> ?", label, id).First(&dup).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&sec).Update("section", label).Error; err != nil {
		return nil, err
	}
	return &sec, nil
}

func (s *Store) DeleteSection(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Delete(&models.Section{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
