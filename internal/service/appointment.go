package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"curavital-api/internal/model"
	"curavital-api/internal/store"
)

// AppointmentStore is the slice of the store the appointment service uses.
type AppointmentStore interface {
	CreateAppointment(ctx context.Context, a *model.Appointment) error
	GetAppointment(ctx context.Context, id string) (*model.Appointment, error)
	ListAppointments(ctx context.Context, f store.AppointmentFilter) ([]model.Appointment, error)
	AppointmentsByDate(ctx context.Context, date string) ([]model.Appointment, error)
	SlotTaken(ctx context.Context, date, slot, excludeID string) (bool, error)
	UpdateAppointment(ctx context.Context, a *model.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
}

type AppointmentService struct {
	store AppointmentStore
}

func NewAppointmentService(st AppointmentStore) *AppointmentService {
	return &AppointmentService{store: st}
}

// AppointmentPatch is a partial update; nil fields keep their value.
type AppointmentPatch struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Age           *int    `json:"age"`
	Condition     *string `json:"condition"`
	Urgency       *string `json:"urgency"`
	PreferredDate *string `json:"preferredDate"`
	PreferredTime *string `json:"preferredTime"`
	Notes         *string `json:"notes"`
	Status        *string `json:"status"`
	AssignedNurse *string `json:"assignedNurse"`
}

// Create registers a new appointment request. The status always starts at
// pending no matter what the caller sends, and the slot must be free:
// the pre-check catches the common case, the partial unique index on
// (preferred_date, preferred_time) catches the race.
func (s *AppointmentService) Create(ctx context.Context, a *model.Appointment) (*model.Appointment, error) {
	if err := validateScheduling(a.PreferredDate, a.PreferredTime); err != nil {
		return nil, err
	}
	if !model.ValidCondition(a.Condition) {
		return nil, fail("Tipo de consulta inválido.", ErrInvalid)
	}
	if !model.ValidUrgency(a.Urgency) {
		return nil, fail("Nivel de urgencia inválido.", ErrInvalid)
	}

	if taken, err := s.store.SlotTaken(ctx, a.PreferredDate, a.PreferredTime, ""); err != nil {
		return nil, fail("No se pudo crear el turno. Por favor, intenta nuevamente.", err)
	} else if taken {
		return nil, fail("El horario seleccionado ya no está disponible.", store.ErrConflict)
	}

	a.ID = uuid.New().String()
	a.Status = model.StatusPending
	if err := s.store.CreateAppointment(ctx, a); err != nil {
		if err == store.ErrConflict {
			return nil, fail("El horario seleccionado ya no está disponible.", err)
		}
		return nil, fail("No se pudo crear el turno. Por favor, intenta nuevamente.", err)
	}
	return a, nil
}

func (s *AppointmentService) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	a, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		return nil, fail("No se pudo encontrar el turno.", err)
	}
	return a, nil
}

func (s *AppointmentService) List(ctx context.Context, f store.AppointmentFilter) ([]model.Appointment, error) {
	out, err := s.store.ListAppointments(ctx, f)
	if err != nil {
		return nil, fail("No se pudieron cargar los turnos.", err)
	}
	return out, nil
}

// Update merges the patch over the stored appointment. A status change
// must follow the lifecycle (pending -> confirmed|cancelled,
// confirmed -> completed|cancelled); a date or slot change re-runs the
// availability check, excluding the appointment itself.
func (s *AppointmentService) Update(ctx context.Context, id string, p AppointmentPatch) (*model.Appointment, error) {
	a, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		return nil, fail("No se pudo encontrar el turno.", err)
	}

	if p.Status != nil {
		if !model.ValidStatus(*p.Status) || !model.CanTransition(a.Status, *p.Status) {
			return nil, fail("Transición de estado inválida.", ErrInvalid)
		}
	}

	rescheduled := false
	if p.PreferredDate != nil && *p.PreferredDate != a.PreferredDate {
		a.PreferredDate = *p.PreferredDate
		rescheduled = true
	}
	if p.PreferredTime != nil && *p.PreferredTime != a.PreferredTime {
		a.PreferredTime = *p.PreferredTime
		rescheduled = true
	}
	if rescheduled {
		if err := validateScheduling(a.PreferredDate, a.PreferredTime); err != nil {
			return nil, err
		}
		if taken, err := s.store.SlotTaken(ctx, a.PreferredDate, a.PreferredTime, a.ID); err != nil {
			return nil, fail("No se pudo actualizar el turno.", err)
		} else if taken {
			return nil, fail("El horario seleccionado ya no está disponible.", store.ErrConflict)
		}
	}

	if p.FirstName != nil {
		a.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		a.LastName = *p.LastName
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.Age != nil {
		a.Age = *p.Age
	}
	if p.Condition != nil {
		if !model.ValidCondition(*p.Condition) {
			return nil, fail("Tipo de consulta inválido.", ErrInvalid)
		}
		a.Condition = *p.Condition
	}
	if p.Urgency != nil {
		if !model.ValidUrgency(*p.Urgency) {
			return nil, fail("Nivel de urgencia inválido.", ErrInvalid)
		}
		a.Urgency = *p.Urgency
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.AssignedNurse != nil {
		a.AssignedNurse = *p.AssignedNurse
	}

	if err := s.store.UpdateAppointment(ctx, a); err != nil {
		if err == store.ErrConflict {
			return nil, fail("El horario seleccionado ya no está disponible.", err)
		}
		return nil, fail("No se pudo actualizar el turno.", err)
	}
	return a, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteAppointment(ctx, id); err != nil {
		return fail("No se pudo eliminar el turno.", err)
	}
	return nil
}

// AvailableSlots returns the catalog minus the slots held by the day's
// non-cancelled appointments, in catalog order. A store failure degrades
// to an empty list — the form then shows no bookable times rather than
// an error.
func (s *AppointmentService) AvailableSlots(ctx context.Context, date string) []string {
	appts, err := s.store.AppointmentsByDate(ctx, date)
	if err != nil {
		log.Printf("available slots for %s: %v", date, err)
		return []string{}
	}

	booked := make(map[string]bool, len(appts))
	for _, a := range appts {
		if a.Status != model.StatusCancelled {
			booked[a.PreferredTime] = true
		}
	}

	out := make([]string, 0, len(model.TimeSlots))
	for _, slot := range model.TimeSlots {
		if !booked[slot] {
			out = append(out, slot)
		}
	}
	return out
}

func validateScheduling(date, slot string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fail("Fecha inválida.", ErrInvalid)
	}
	if !model.ValidTimeSlot(slot) {
		return fail("Horario fuera del catálogo.", ErrInvalid)
	}
	return nil
}
