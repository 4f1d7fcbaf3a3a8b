package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pmhub/mentor-back/internal/models"
)

// MentorFilter narrows mentor listings. Empty fields are ignored; values are
// always bound as query parameters, never spliced into SQL.
type MentorFilter struct {
	Day  string
	Time string
	Name string
}

func (f MentorFilter) apply(tx *gorm.DB) *gorm.DB {
	if f.Day != "" {
		tx = tx.Where("day = ?", f.Day)
	}
	if f.Time != "" {
		tx = tx.Where("time = ?", f.Time)
	}
	if f.Name != "" {
		tx = tx.Where("name = ?", f.Name)
	}
	return tx
}

func (s *Store) CreatePeerMentor(ctx context.Context, m *models.PeerMentor) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Create(m).Error
}

// ListPeerMentors returns the newest mentors first, optionally filtered and
// capped, together with the unfiltered total.
func (s *Store) ListPeerMentors(ctx context.Context, f MentorFilter, limit int) ([]models.PeerMentor, int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx := f.apply(s.db.WithContext(ctx).Model(&models.PeerMentor{})).Order("id DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	mentors := []models.PeerMentor{}
	if err := tx.Find(&mentors).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.PeerMentor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return mentors, total, nil
}

// ListPeerMentorsPage returns one page of mentors plus the unfiltered total.
func (s *Store) ListPeerMentorsPage(ctx context.Context, f MentorFilter, page, pageSize int) ([]models.PeerMentor, int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	offset := (page - 1) * pageSize
	tx := f.apply(s.db.WithContext(ctx).Model(&models.PeerMentor{})).
		Order("id").Offset(offset).Limit(pageSize)

	mentors := []models.PeerMentor{}
	if err := tx.Find(&mentors).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.PeerMentor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return mentors, total, nil
}

// FilterPeerMentors is the public availability lookup: exact day and time,
// optional name.
func (s *Store) FilterPeerMentors(ctx context.Context, f MentorFilter) ([]models.PeerMentor, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	mentors := []models.PeerMentor{}
	if err := f.apply(s.db.WithContext(ctx).Model(&models.PeerMentor{})).Find(&mentors).Error; err != nil {
		return nil, err
	}
	return mentors, nil
}

func (s *Store) GetPeerMentor(ctx context.Context, id uint) (*models.PeerMentor, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var mentor models.PeerMentor
	if err := s.db.WithContext(ctx).First(&mentor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &mentor, nil
}

// UpdatePeerMentor writes only the supplied fields. IsAvailable is not
// among them: the flag moves only through booking and the weekly reset.
func (s *Store) UpdatePeerMentor(ctx context.Context, id uint, fields map[string]interface{}) (*models.PeerMentor, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var mentor models.PeerMentor
	if err := s.db.WithContext(ctx).First(&mentor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&mentor).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &mentor, nil
}

func (s *Store) DeletePeerMentor(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Delete(&models.PeerMentor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
