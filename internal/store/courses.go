package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pmhub/mentor-back/internal/models"
)

// CreateCourse inserts a course after checking the course code is not taken.
func (s *Store) CreateCourse(ctx context.Context, c *models.Course) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Where("course_code = ?", c.CourseCode).First(&models.Course{}).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *Store) ListCourses(ctx context.Context) ([]models.Course, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	courses := []models.Course{}
	if err := s.db.WithContext(ctx).Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *Store) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var course models.Course
	if err := s.db.WithContext(ctx).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// UpdateCourse writes only the supplied fields and returns the updated row.
func (s *Store) UpdateCourse(ctx context.Context, id uint, fields map[string]interface{}) (*models.Course, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var course models.Course
	if err := s.db.WithContext(ctx).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if code, ok := fields["course_code"]; ok {
		var dup models.Course
		err := s.db.WithContext(ctx).Where("course_code = ? AND id <> ?", code, id).First(&dup).Error
		if err == nil {
			return nil, ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := s.db.WithContext(ctx).Model(&course).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *Store) DeleteCourse(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Delete(&models.Course{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
