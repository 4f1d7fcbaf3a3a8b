package models

// Admin is the single shared administrator account. Signup is rejected once a
// row exists.
type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

type Course struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CourseCode string `gorm:"uniqueIndex;not null" json:"courseCode"`
	Name       string `gorm:"not null" json:"name"`
}

type Section struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Section string `gorm:"uniqueIndex;not null" json:"section"`
}

type PeerMentor struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Day         string `gorm:"size:3;not null" json:"day"`  // Mon..Sun
	Time        string `gorm:"size:5;not null" json:"time"` // HH:MM
	IsAvailable bool   `gorm:"not null;default:true" json:"isAvailable"`
}

type Appointment struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	GroupName    string `gorm:"not null" json:"groupName"`
	LeaderLineID string `gorm:"not null" json:"leaderLineID"`
	CourseCodeID uint   `gorm:"not null;index" json:"courseCodeId"`
	SectionID    uint   `gorm:"not null;index" json:"sectionId"`
	PeerMentorID uint   `gorm:"not null;index" json:"peerMentorId"`
}

// PeerMentorSummary is the mentor slice embedded in appointment responses.
type PeerMentorSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Day  string `json:"day"`
	Time string `json:"time"`
}

// AppointmentDetail is the joined view returned by the appointment endpoints:
// the raw foreign keys replaced with the human-readable course code, section
// label and mentor summary.
type AppointmentDetail struct {
	ID           uint              `json:"id"`
	GroupName    string            `json:"groupName"`
	LeaderLineID string            `json:"leaderLineID"`
	CourseCode   string            `json:"courseCode"`
	Section      string            `json:"section"`
	PeerMentor   PeerMentorSummary `json:"peerMentor"`
}
