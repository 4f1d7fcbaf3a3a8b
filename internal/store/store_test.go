package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pmhub/mentor-back/internal/models"
	"github.com/pmhub/mentor-back/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	st, err := store.NewWithDB(db)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

// seedBookingFixtures creates one course, one section and one available
// mentor and returns them.
func seedBookingFixtures(t *testing.T, st *store.Store) (models.Course, models.Section, models.PeerMentor) {
	t.Helper()
	ctx := context.Background()

	course := models.Course{CourseCode: "CS101", Name: "Intro CS"}
	require.NoError(t, st.CreateCourse(ctx, &course))

	section := models.Section{Section: "S1"}
	require.NoError(t, st.CreateSection(ctx, &section))

	mentor := models.PeerMentor{Name: "M", Day: "Mon", Time: "10:00", IsAvailable: true}
	require.NoError(t, st.CreatePeerMentor(ctx, &mentor))

	return course, section, mentor
}

func TestBookAppointmentMarksMentorUnavailable(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	course, section, mentor := seedBookingFixtures(t, st)

	appt := models.Appointment{
		GroupName:    "G1",
		LeaderLineID: "L1",
		CourseCodeID: course.ID,
		SectionID:    section.ID,
		PeerMentorID: mentor.ID,
	}
	require.NoError(t, st.BookAppointment(ctx, &appt))
	assert.NotZero(t, appt.ID)

	got, err := st.GetPeerMentor(ctx, mentor.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)

	detail, err := st.GetAppointment(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "CS101", detail.CourseCode)
	assert.Equal(t, "S1", detail.Section)
	assert.Equal(t, "G1", detail.GroupName)
	assert.Equal(t, mentor.ID, detail.PeerMentor.ID)
	assert.Equal(t, "10:00", detail.PeerMentor.Time)
	assert.Equal(t, "Mon", detail.PeerMentor.Day)
}

func TestBookAppointmentSecondBookingConflicts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	course, section, mentor := seedBookingFixtures(t, st)

	first := models.Appointment{
		GroupName: "G1", LeaderLineID: "L1",
		CourseCodeID: course.ID, SectionID: section.ID, PeerMentorID: mentor.ID,
	}
	require.NoError(t, st.BookAppointment(ctx, &first))

	second := models.Appointment{
		GroupName: "G2", LeaderLineID: "L2",
		CourseCodeID: course.ID, SectionID: section.ID, PeerMentorID: mentor.ID,
	}
	err := st.BookAppointment(ctx, &second)
	assert.ErrorIs(t, err, store.ErrMentorUnavailable)

	details, err := st.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Len(t, details, 1)
}

func TestBookAppointmentInvalidCourseLeavesMentorUntouched(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_, section, mentor := seedBookingFixtures(t, st)

	appt := models.Appointment{
		GroupName: "G1", LeaderLineID: "L1",
		CourseCodeID: 9999, SectionID: section.ID, PeerMentorID: mentor.ID,
	}
	err := st.BookAppointment(ctx, &appt)
	assert.ErrorIs(t, err, store.ErrInvalidCourse)

	got, err := st.GetPeerMentor(ctx, mentor.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)

	details, err := st.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestBookAppointmentInvalidSection(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	course, _, mentor := seedBookingFixtures(t, st)

	appt := models.Appointment{
		GroupName: "G1", LeaderLineID: "L1",
		CourseCodeID: course.ID, SectionID: 9999, PeerMentorID: mentor.ID,
	}
	err := st.BookAppointment(ctx, &appt)
	assert.ErrorIs(t, err, store.ErrInvalidSection)

	got, err := st.GetPeerMentor(ctx, mentor.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
}

func TestBookAppointmentMissingMentor(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	course, section, _ := seedBookingFixtures(t, st)

	appt := models.Appointment{
		GroupName: "G1", LeaderLineID: "L1",
		CourseCodeID: course.ID, SectionID: section.ID, PeerMentorID: 9999,
	}
	err := st.BookAppointment(ctx, &appt)
	assert.ErrorIs(t, err, store.ErrMentorUnavailable)
}

func TestUpdateAppointment(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	course, section, mentor := seedBookingFixtures(t, st)

	appt := models.Appointment{
		GroupName: "G1", LeaderLineID: "L1",
		CourseCodeID: course.ID, SectionID: section.ID, PeerMentorID: mentor.ID,
	}
	require.NoError(t, st.BookAppointment(ctx, &appt))

	detail, err := st.UpdateAppointment(ctx, appt.ID, map[string]interface{}{"group_name": "G1b"})
	require.NoError(t, err)
	assert.Equal(t, "G1b", detail.GroupName)
	assert.Equal(t, "L1", detail.LeaderLineID)

	_, err = st.UpdateAppointment(ctx, appt.ID, map[string]interface{}{"course_code_id": uint(9999)})
	assert.ErrorIs(t, err, store.ErrInvalidCourse)

	_, err = st.UpdateAppointment(ctx, 9999, map[string]interface{}{"group_name": "X"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	// The update path never touches availability.
	got, err := st.GetPeerMentor(ctx, mentor.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
}

func TestDeleteAppointmentKeepsMentorUnavailable(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	course, section, mentor := seedBookingFixtures(t, st)

	appt := models.Appointment{
		GroupName: "G1", LeaderLineID: "L1",
		CourseCodeID: course.ID, SectionID: section.ID, PeerMentorID: mentor.ID,
	}
	require.NoError(t, st.BookAppointment(ctx, &appt))
	require.NoError(t, st.DeleteAppointment(ctx, appt.ID))

	_, err := st.GetAppointment(ctx, appt.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	got, err := st.GetPeerMentor(ctx, mentor.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
}

func TestResetWeek(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	course, section, mentor := seedBookingFixtures(t, st)

	appt := models.Appointment{
		GroupName: "G1", LeaderLineID: "L1",
		CourseCodeID: course.ID, SectionID: section.ID, PeerMentorID: mentor.ID,
	}
	require.NoError(t, st.BookAppointment(ctx, &appt))

	require.NoError(t, st.ResetWeek(ctx))

	details, err := st.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, details)

	got, err := st.GetPeerMentor(ctx, mentor.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)

	// Idempotent: a second run with no intervening bookings changes nothing.
	require.NoError(t, st.ResetWeek(ctx))
	got, err = st.GetPeerMentor(ctx, mentor.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
}

func TestCourseRoundTripAndUniqueness(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	course := models.Course{CourseCode: "CS101", Name: "Intro CS"}
	require.NoError(t, st.CreateCourse(ctx, &course))

	got, err := st.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "CS101", got.CourseCode)
	assert.Equal(t, "Intro CS", got.Name)

	dup := models.Course{CourseCode: "CS101", Name: "Other"}
	assert.ErrorIs(t, st.CreateCourse(ctx, &dup), store.ErrConflict)

	other := models.Course{CourseCode: "CS102", Name: "Data Structures"}
	require.NoError(t, st.CreateCourse(ctx, &other))
	_, err = st.UpdateCourse(ctx, other.ID, map[string]interface{}{"course_code": "CS101"})
	assert.ErrorIs(t, err, store.ErrConflict)

	updated, err := st.UpdateCourse(ctx, other.ID, map[string]interface{}{"name": "DSA"})
	require.NoError(t, err)
	assert.Equal(t, "DSA", updated.Name)
	assert.Equal(t, "CS102", updated.CourseCode)
}

func TestSectionUniqueness(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sec := models.Section{Section: "S1"}
	require.NoError(t, st.CreateSection(ctx, &sec))
	assert.ErrorIs(t, st.CreateSection(ctx, &models.Section{Section: "S1"}), store.ErrConflict)

	sec2 := models.Section{Section: "S2"}
	require.NoError(t, st.CreateSection(ctx, &sec2))
	_, err := st.UpdateSection(ctx, sec2.ID, "S1")
	assert.ErrorIs(t, err, store.ErrConflict)

	updated, err := st.UpdateSection(ctx, sec2.ID, "S3")
	require.NoError(t, err)
	assert.Equal(t, "S3", updated.Section)
}

func TestListPeerMentorsFiltersAndPaging(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		m := models.PeerMentor{Name: fmt.Sprintf("M%d", i), Day: "Mon", Time: "10:00", IsAvailable: true}
		require.NoError(t, st.CreatePeerMentor(ctx, &m))
	}
	tue := models.PeerMentor{Name: "T", Day: "Tue", Time: "11:00", IsAvailable: true}
	require.NoError(t, st.CreatePeerMentor(ctx, &tue))

	mentors, total, err := st.ListPeerMentors(ctx, store.MentorFilter{Day: "Mon"}, 0)
	require.NoError(t, err)
	assert.Len(t, mentors, 5)
	assert.EqualValues(t, 6, total)

	mentors, _, err = st.ListPeerMentors(ctx, store.MentorFilter{}, 2)
	require.NoError(t, err)
	assert.Len(t, mentors, 2)
	// Newest first.
	assert.Equal(t, "T", mentors[0].Name)

	page, total, err := st.ListPeerMentorsPage(ctx, store.MentorFilter{}, 2, 4)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.EqualValues(t, 6, total)

	filtered, err := st.FilterPeerMentors(ctx, store.MentorFilter{Day: "Tue", Time: "11:00"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "T", filtered[0].Name)

	none, err := st.FilterPeerMentors(ctx, store.MentorFilter{Day: "Sun", Time: "09:00"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdatePeerMentorDoesNotTouchAvailability(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	course, section, mentor := seedBookingFixtures(t, st)

	appt := models.Appointment{
		GroupName: "G1", LeaderLineID: "L1",
		CourseCodeID: course.ID, SectionID: section.ID, PeerMentorID: mentor.ID,
	}
	require.NoError(t, st.BookAppointment(ctx, &appt))

	updated, err := st.UpdatePeerMentor(ctx, mentor.ID, map[string]interface{}{"name": "M2"})
	require.NoError(t, err)
	assert.Equal(t, "M2", updated.Name)
	assert.False(t, updated.IsAvailable)
}

func TestAdminSingleton(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	count, err := st.CountAdmins(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	admin := models.Admin{Username: "admin", Password: "hash"}
	require.NoError(t, st.CreateAdmin(ctx, &admin))

	err = st.CreateAdmin(ctx, &models.Admin{Username: "other", Password: "hash"})
	assert.ErrorIs(t, err, store.ErrAdminExists)

	got, err := st.GetAdminByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "hash", got.Password)

	_, err = st.GetAdminByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.UpdateAdminPassword(ctx, "admin", "hash2"))
	got, err = st.GetAdminByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "hash2", got.Password)
}
