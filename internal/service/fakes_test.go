package service

import (
	"context"
	"strings"
	"time"

	"curavital-api/internal/model"
	"curavital-api/internal/store"
)

// fakeStore is an in-memory stand-in for store.Store. It honors the same
// contracts: sentinel errors, newest-first ordering, the slot uniqueness
// rule. Setting err makes every call fail, simulating an unreachable
// database.
type fakeStore struct {
	appointments []model.Appointment
	articles     []model.Article
	testimonials []model.Testimonial
	err          error
	now          time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

// tick hands out strictly increasing timestamps so newest-first ordering
// is deterministic.
func (f *fakeStore) tick() time.Time {
	f.now = f.now.Add(time.Minute)
	return f.now
}

// ----- appointments -----

func (f *fakeStore) CreateAppointment(_ context.Context, a *model.Appointment) error {
	if f.err != nil {
		return f.err
	}
	for _, x := range f.appointments {
		if x.PreferredDate == a.PreferredDate && x.PreferredTime == a.PreferredTime &&
			x.Status != model.StatusCancelled {
			return store.ErrConflict
		}
	}
	a.CreatedAt = f.tick()
	a.UpdatedAt = a.CreatedAt
	f.appointments = append(f.appointments, *a)
	return nil
}

func (f *fakeStore) GetAppointment(_ context.Context, id string) (*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.appointments {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListAppointments(_ context.Context, fl store.AppointmentFilter) ([]model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Appointment
	for i := len(f.appointments) - 1; i >= 0; i-- {
		a := f.appointments[i]
		if fl.Date != "" && a.PreferredDate != fl.Date {
			continue
		}
		if fl.Status != "" && a.Status != fl.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStore) AppointmentsByDate(_ context.Context, date string) ([]model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Appointment
	for _, a := range f.appointments {
		if a.PreferredDate == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) SlotTaken(_ context.Context, date, slot, excludeID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, a := range f.appointments {
		if a.PreferredDate == date && a.PreferredTime == slot &&
			a.Status != model.StatusCancelled && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UpdateAppointment(_ context.Context, a *model.Appointment) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.appointments {
		if f.appointments[i].ID == a.ID {
			a.UpdatedAt = f.tick()
			a.CreatedAt = f.appointments[i].CreatedAt
			f.appointments[i] = *a
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteAppointment(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// ----- articles -----

func (f *fakeStore) CreateArticle(_ context.Context, a *model.Article) error {
	if f.err != nil {
		return f.err
	}
	a.CreatedAt = f.tick()
	a.UpdatedAt = a.CreatedAt
	f.articles = append(f.articles, *a)
	return nil
}

func (f *fakeStore) GetArticle(_ context.Context, id string) (*model.Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.articles {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListArticles(_ context.Context, fl store.ArticleFilter) ([]model.Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Article
	for i := len(f.articles) - 1; i >= 0; i-- {
		a := f.articles[i]
		if fl.PublishedOnly && !a.IsPublished {
			continue
		}
		if fl.Category != "" && a.Category != fl.Category {
			continue
		}
		if fl.Search != "" {
			q := strings.ToLower(fl.Search)
			if !strings.Contains(strings.ToLower(a.Title), q) &&
				!strings.Contains(strings.ToLower(a.Excerpt), q) &&
				!strings.Contains(strings.ToLower(a.Content), q) {
				continue
			}
		}
		out = append(out, a)
		if fl.Limit > 0 && len(out) == fl.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateArticle(_ context.Context, a *model.Article) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.articles {
		if f.articles[i].ID == a.ID {
			a.UpdatedAt = f.tick()
			a.CreatedAt = f.articles[i].CreatedAt
			f.articles[i] = *a
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteArticle(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.articles {
		if f.articles[i].ID == id {
			f.articles = append(f.articles[:i], f.articles[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// ----- testimonials -----

func (f *fakeStore) CreateTestimonial(_ context.Context, t *model.Testimonial) error {
	if f.err != nil {
		return f.err
	}
	t.CreatedAt = f.tick()
	t.UpdatedAt = t.CreatedAt
	f.testimonials = append(f.testimonials, *t)
	return nil
}

func (f *fakeStore) GetTestimonial(_ context.Context, id string) (*model.Testimonial, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.testimonials {
		if t.ID == id {
			out := t
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListTestimonials(_ context.Context, approvedOnly bool) ([]model.Testimonial, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Testimonial
	for i := len(f.testimonials) - 1; i >= 0; i-- {
		t := f.testimonials[i]
		if approvedOnly && !t.IsApproved {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeStore) UpdateTestimonial(_ context.Context, t *model.Testimonial) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.testimonials {
		if f.testimonials[i].ID == t.ID {
			t.UpdatedAt = f.tick()
			t.CreatedAt = f.testimonials[i].CreatedAt
			f.testimonials[i] = *t
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteTestimonial(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.testimonials {
		if f.testimonials[i].ID == id {
			f.testimonials = append(f.testimonials[:i], f.testimonials[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
