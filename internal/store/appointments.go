package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pmhub/mentor-back/internal/models"
)

// BookAppointment marks the mentor unavailable and inserts the appointment as
// one transaction. The mentor flip is a conditional update guarded on
// is_available, so of two concurrent bookings for the same mentor exactly one
// sees a row affected; the other rolls back with ErrMentorUnavailable. Any
// later failure inside the transaction also rolls the flip back, so a failed
// booking never leaves a mentor stuck unavailable.
func (s *Store) BookAppointment(ctx context.Context, a *models.Appointment) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Course{}, a.CourseCodeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidCourse
			}
			return err
		}
		if err := tx.First(&models.Section{}, a.SectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidSection
			}
			return err
		}

		res := tx.Model(&models.PeerMentor{}).
			Where("id = ? AND is_available = ?", a.PeerMentorID, true).
			Update("is_available", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrMentorUnavailable
		}

		return tx.Create(a).Error
	})
}

// appointmentRow is the flat scan target for the joined appointment query.
type appointmentRow struct {
	ID             uint
	GroupName      string
	LeaderLineID   string
	CourseCode     string
	Section        string
	PeerMentorID   uint
	PeerMentorName string
	Day            string
	Time           string
}

func (r appointmentRow) detail() models.AppointmentDetail {
	return models.AppointmentDetail{
		ID:           r.ID,
		GroupName:    r.GroupName,
		LeaderLineID: r.LeaderLineID,
		CourseCode:   r.CourseCode,
		Section:      r.Section,
		PeerMentor: models.PeerMentorSummary{
			ID:   r.PeerMentorID,
			Name: r.PeerMentorName,
			Day:  r.Day,
			Time: r.Time,
		},
	}
}

func (s *Store) appointmentJoin(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("appointments AS a").
		Select("a.id, a.group_name, a.leader_line_id, c.course_code, s.section, " +
			"p.id AS peer_mentor_id, p.name AS peer_mentor_name, p.day, p.time").
		Joins("JOIN courses c ON a.course_code_id = c.id").
		Joins("JOIN sections s ON a.section_id = s.id").
		Joins("JOIN peer_mentors p ON a.peer_mentor_id = p.id")
}

func (s *Store) ListAppointments(ctx context.Context) ([]models.AppointmentDetail, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var rows []appointmentRow
	if err := s.appointmentJoin(ctx).Order("a.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	details := make([]models.AppointmentDetail, 0, len(rows))
	for _, r := range rows {
		details = append(details, r.detail())
	}
	return details, nil
}

func (s *Store) GetAppointment(ctx context.Context, id uint) (*models.AppointmentDetail, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var rows []appointmentRow
	if err := s.appointmentJoin(ctx).Where("a.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	d := rows[0].detail()
	return &d, nil
}

// UpdateAppointment writes only the supplied fields. Foreign keys are
// re-validated when present, but mentor availability flags are never touched
// here: this is a data-correction path, not a re-booking path.
func (s *Store) UpdateAppointment(ctx context.Context, id uint, fields map[string]interface{}) (*models.AppointmentDetail, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var appt models.Appointment
	if err := s.db.WithContext(ctx).First(&appt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if courseID, ok := fields["course_code_id"]; ok {
		if err := s.db.WithContext(ctx).First(&models.Course{}, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCourse
			}
			return nil, err
		}
	}
	if sectionID, ok := fields["section_id"]; ok {
		if err := s.db.WithContext(ctx).First(&models.Section{}, sectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidSection
			}
			return nil, err
		}
	}

	if err := s.db.WithContext(ctx).Model(&appt).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetAppointment(ctx, id)
}

func (s *Store) DeleteAppointment(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetWeek restores every mentor to available and clears the appointment
// book. Both run in one transaction so a failure cannot leave mentors
// unavailable with no appointment rows behind them.
func (s *Store) ResetWeek(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.PeerMentor{}).
			Where("is_available = ?", false).
			Update("is_available", true).Error
		if err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Appointment{}).Error
	})
}
