package store

import (
	"context"

	"curavital-api/internal/model"
)

const testimonialCols = `id, patient_name, patient_age, condition, testimonial_text,
	rating, treatment_duration, patient_image, case_image, is_approved,
	created_at, updated_at`

func (s *Store) CreateTestimonial(ctx context.Context, t *model.Testimonial) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO testimonials
		   (id, patient_name, patient_age, condition, testimonial_text, rating,
		    treatment_duration, patient_image, case_image, is_approved)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING created_at, updated_at`,
		t.ID, t.PatientName, t.PatientAge, t.Condition, t.TestimonialText,
		t.Rating, t.TreatmentDuration, t.PatientImage, t.CaseImage, t.IsApproved,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	return wrapErr(err)
}

func (s *Store) GetTestimonial(ctx context.Context, id string) (*model.Testimonial, error) {
	t := &model.Testimonial{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+testimonialCols+` FROM testimonials WHERE id = $1`, id,
	).Scan(&t.ID, &t.PatientName, &t.PatientAge, &t.Condition, &t.TestimonialText,
		&t.Rating, &t.TreatmentDuration, &t.PatientImage, &t.CaseImage,
		&t.IsApproved, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, wrapErr(err)
	}
	return t, nil
}

func (s *Store) ListTestimonials(ctx context.Context, approvedOnly bool) ([]model.Testimonial, error) {
	q := `SELECT ` + testimonialCols + ` FROM testimonials`
	if approvedOnly {
		q += ` WHERE is_approved = true`
	}
	q += ` ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var out []model.Testimonial
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(
			&t.ID, &t.PatientName, &t.PatientAge, &t.Condition, &t.TestimonialText,
			&t.Rating, &t.TreatmentDuration, &t.PatientImage, &t.CaseImage,
			&t.IsApproved, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) UpdateTestimonial(ctx context.Context, t *model.Testimonial) error {
	err := s.pool.QueryRow(ctx,
		`UPDATE testimonials
		 SET patient_name=$1, patient_age=$2, condition=$3, testimonial_text=$4,
		     rating=$5, treatment_duration=$6, patient_image=$7, case_image=$8,
		     is_approved=$9, updated_at=NOW()
		 WHERE id=$10
		 RETURNING updated_at`,
		t.PatientName, t.PatientAge, t.Condition, t.TestimonialText, t.Rating,
		t.TreatmentDuration, t.PatientImage, t.CaseImage, t.IsApproved, t.ID,
	).Scan(&t.UpdatedAt)
	return wrapErr(err)
}

func (s *Store) DeleteTestimonial(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
