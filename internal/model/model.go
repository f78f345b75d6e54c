package model

import "time"

// Appointment lifecycle states.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Urgency tiers for an appointment request.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// TimeSlots is the fixed catalog of bookable half-hour slots per day,
// in display order. The morning block runs 08:00-11:30, the afternoon
// block 14:00-17:30.
var TimeSlots = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
	"11:00", "11:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30",
}

// Conditions the intake form offers.
var Conditions = []string{
	"Úlcera Venosa",
	"Úlcera Arterial",
	"Úlcera Diabética",
	"Úlcera por Presión",
	"Herida Quirúrgica",
	"Quemadura",
	"Consulta Preventiva",
	"Otra",
}

func ValidTimeSlot(s string) bool {
	for _, t := range TimeSlots {
		if t == s {
			return true
		}
	}
	return false
}

func ValidCondition(s string) bool {
	for _, c := range Conditions {
		if c == s {
			return true
		}
	}
	return false
}

func ValidUrgency(s string) bool {
	return s == UrgencyLow || s == UrgencyMedium || s == UrgencyHigh
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// transitions holds the legal status changes. completed and cancelled
// are terminal.
var transitions = map[string]map[string]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
}

// CanTransition reports whether an appointment may move from one status
// to another through an explicit update.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	return transitions[from][to]
}

type Appointment struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Age           int       `json:"age"`
	Condition     string    `json:"condition"`
	Urgency       string    `json:"urgency"`
	PreferredDate string    `json:"preferredDate"` // calendar date, YYYY-MM-DD
	PreferredTime string    `json:"preferredTime"` // one of TimeSlots
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	AssignedNurse string    `json:"assignedNurse,omitempty"`
	CreatedAt     time.Time `json:"created"`
	UpdatedAt     time.Time `json:"updated"`
}

type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	ReadTime    string    `json:"readTime"`
	Image       string    `json:"image,omitempty"`
	IsPublished bool      `json:"isPublished"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created"`
	UpdatedAt   time.Time `json:"updated"`
}

type Testimonial struct {
	ID                string    `json:"id"`
	PatientName       string    `json:"patientName"`
	PatientAge        int       `json:"patientAge"`
	Condition         string    `json:"condition"`
	TestimonialText   string    `json:"testimonialText"`
	Rating            int       `json:"rating"` // 1-5 stars
	TreatmentDuration string    `json:"treatmentDuration"`
	PatientImage      string    `json:"patientImage,omitempty"`
	CaseImage         string    `json:"caseImage,omitempty"`
	IsApproved        bool      `json:"isApproved"`
	CreatedAt         time.Time `json:"created"`
	UpdatedAt         time.Time `json:"updated"`
}
