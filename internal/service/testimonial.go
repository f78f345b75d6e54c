package service

import (
	"context"

	"github.com/google/uuid"

	"curavital-api/internal/model"
)

type TestimonialStore interface {
	CreateTestimonial(ctx context.Context, t *model.Testimonial) error
	GetTestimonial(ctx context.Context, id string) (*model.Testimonial, error)
	ListTestimonials(ctx context.Context, approvedOnly bool) ([]model.Testimonial, error)
	UpdateTestimonial(ctx context.Context, t *model.Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error
}

type TestimonialService struct {
	store TestimonialStore
}

func NewTestimonialService(st TestimonialStore) *TestimonialService {
	return &TestimonialService{store: st}
}

// Create stores a visitor-submitted testimonial. It always enters
// unapproved; visibility requires an explicit Approve.
func (s *TestimonialService) Create(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error) {
	if t.Rating < 1 || t.Rating > 5 {
		return nil, fail("La calificación debe estar entre 1 y 5.", ErrInvalid)
	}
	t.ID = uuid.New().String()
	t.IsApproved = false
	if err := s.store.CreateTestimonial(ctx, t); err != nil {
		return nil, fail("No se pudo enviar el testimonio.", err)
	}
	return t, nil
}

// ListApproved is the visitor-facing query.
func (s *TestimonialService) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	out, err := s.store.ListTestimonials(ctx, true)
	if err != nil {
		return nil, fail("No se pudieron cargar los testimonios.", err)
	}
	return out, nil
}

// ListAll includes unapproved submissions; staff review path.
func (s *TestimonialService) ListAll(ctx context.Context) ([]model.Testimonial, error) {
	out, err := s.store.ListTestimonials(ctx, false)
	if err != nil {
		return nil, fail("No se pudieron cargar los testimonios.", err)
	}
	return out, nil
}

func (s *TestimonialService) Approve(ctx context.Context, id string) (*model.Testimonial, error) {
	approved := true
	return s.Update(ctx, id, TestimonialPatch{IsApproved: &approved})
}

// TestimonialPatch is a partial update; nil fields keep their value.
type TestimonialPatch struct {
	PatientName       *string `json:"patientName"`
	PatientAge        *int    `json:"patientAge"`
	Condition         *string `json:"condition"`
	TestimonialText   *string `json:"testimonialText"`
	Rating            *int    `json:"rating"`
	TreatmentDuration *string `json:"treatmentDuration"`
	PatientImage      *string `json:"patientImage"`
	CaseImage         *string `json:"caseImage"`
	IsApproved        *bool   `json:"isApproved"`
}

func (s *TestimonialService) Update(ctx context.Context, id string, p TestimonialPatch) (*model.Testimonial, error) {
	t, err := s.store.GetTestimonial(ctx, id)
	if err != nil {
		return nil, fail("No se pudo encontrar el testimonio.", err)
	}

	if p.PatientName != nil {
		t.PatientName = *p.PatientName
	}
	if p.PatientAge != nil {
		t.PatientAge = *p.PatientAge
	}
	if p.Condition != nil {
		t.Condition = *p.Condition
	}
	if p.TestimonialText != nil {
		t.TestimonialText = *p.TestimonialText
	}
	if p.Rating != nil {
		if *p.Rating < 1 || *p.Rating > 5 {
			return nil, fail("La calificación debe estar entre 1 y 5.", ErrInvalid)
		}
		t.Rating = *p.Rating
	}
	if p.TreatmentDuration != nil {
		t.TreatmentDuration = *p.TreatmentDuration
	}
	if p.PatientImage != nil {
		t.PatientImage = *p.PatientImage
	}
	if p.CaseImage != nil {
		t.CaseImage = *p.CaseImage
	}
	if p.IsApproved != nil {
		t.IsApproved = *p.IsApproved
	}

	if err := s.store.UpdateTestimonial(ctx, t); err != nil {
		return nil, fail("No se pudo actualizar el testimonio.", err)
	}
	return t, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteTestimonial(ctx, id); err != nil {
		return fail("No se pudo eliminar el testimonio.", err)
	}
	return nil
}
