package service

import (
	"context"
	"errors"
	"testing"

	"curavital-api/internal/model"
	"curavital-api/internal/store"
)

func validTestimonial() *model.Testimonial {
	return &model.Testimonial{
		PatientName:       "Carlos M.",
		PatientAge:        67,
		Condition:         "Úlcera Diabética",
		TestimonialText:   "Excelente atención, la herida cerró en tres meses.",
		Rating:            5,
		TreatmentDuration: "3 meses",
	}
}

func TestTestimonialCreateStartsUnapproved(t *testing.T) {
	s := NewTestimonialService(newFakeStore())

	in := validTestimonial()
	in.IsApproved = true // submission path may not self-approve

	created, err := s.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsApproved {
		t.Error("testimonial must enter unapproved")
	}
}

func TestTestimonialRatingBounds(t *testing.T) {
	s := NewTestimonialService(newFakeStore())

	for _, rating := range []int{0, -1, 6} {
		in := validTestimonial()
		in.Rating = rating
		if _, err := s.Create(context.Background(), in); !errors.Is(err, ErrInvalid) {
			t.Errorf("rating %d: expected ErrInvalid, got %v", rating, err)
		}
	}
}

func TestTestimonialVisibility(t *testing.T) {
	s := NewTestimonialService(newFakeStore())

	first, _ := s.Create(context.Background(), validTestimonial())
	s.Create(context.Background(), validTestimonial())

	visible, err := s.ListApproved(context.Background())
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("nothing should be visible before approval, got %d", len(visible))
	}

	all, err := s.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("review list should hold both, got %d", len(all))
	}

	approved, err := s.Approve(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !approved.IsApproved {
		t.Error("approve did not set the flag")
	}

	visible, _ = s.ListApproved(context.Background())
	if len(visible) != 1 || visible[0].ID != first.ID {
		t.Errorf("expected only the approved testimonial, got %+v", visible)
	}
}

func TestTestimonialDelete(t *testing.T) {
	s := NewTestimonialService(newFakeStore())
	created, _ := s.Create(context.Background(), validTestimonial())

	if err := s.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(context.Background(), created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestTestimonialStoreFailureMessage(t *testing.T) {
	fs := newFakeStore()
	fs.err = errors.New("connection refused")
	s := NewTestimonialService(fs)

	_, err := s.ListApproved(context.Background())
	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *service.Error, got %v", err)
	}
	if se.Message != "No se pudieron cargar los testimonios." {
		t.Errorf("unexpected message: %s", se.Message)
	}
}
