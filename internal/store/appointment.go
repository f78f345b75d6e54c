package store

import (
	"context"

	"curavital-api/internal/model"
)

// AppointmentFilter narrows ListAppointments. Zero values mean "any".
type AppointmentFilter struct {
	Date   string // YYYY-MM-DD
	Status string
}

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO appointments
		   (id, first_name, last_name, email, phone, age, condition, urgency,
		    preferred_date, preferred_time, notes, status, assigned_nurse)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9::date,$10,$11,$12,$13)
		 RETURNING created_at, updated_at`,
		a.ID, a.FirstName, a.LastName, a.Email, a.Phone, a.Age, a.Condition,
		a.Urgency, a.PreferredDate, a.PreferredTime, a.Notes, a.Status, a.AssignedNurse,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return wrapErr(err)
}

func (s *Store) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, phone, age, condition, urgency,
		        preferred_date::text, preferred_time, notes, status, assigned_nurse,
		        created_at, updated_at
		 FROM appointments WHERE id = $1`, id,
	).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Age,
		&a.Condition, &a.Urgency, &a.PreferredDate, &a.PreferredTime, &a.Notes,
		&a.Status, &a.AssignedNurse, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, wrapErr(err)
	}
	return a, nil
}

func (s *Store) ListAppointments(ctx context.Context, f AppointmentFilter) ([]model.Appointment, error) {
	q := `SELECT id, first_name, last_name, email, phone, age, condition, urgency,
	             preferred_date::text, preferred_time, notes, status, assigned_nurse,
	             created_at, updated_at
	      FROM appointments WHERE 1=1`
	args := []any{}

	if f.Date != "" {
		args = append(args, f.Date)
		q += ` AND preferred_date = $1::date`
	}
	if f.Status != "" {
		args = append(args, f.Status)
		if len(args) == 1 {
			q += ` AND status = $1`
		} else {
			q += ` AND status = $2`
		}
	}
	q += ` ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Age,
			&a.Condition, &a.Urgency, &a.PreferredDate, &a.PreferredTime, &a.Notes,
			&a.Status, &a.AssignedNurse, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// AppointmentsByDate returns the day's appointments ordered by slot,
// cancelled ones included; the caller decides what to drop.
func (s *Store) AppointmentsByDate(ctx context.Context, date string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, first_name, last_name, email, phone, age, condition, urgency,
		        preferred_date::text, preferred_time, notes, status, assigned_nurse,
		        created_at, updated_at
		 FROM appointments
		 WHERE preferred_date = $1::date
		 ORDER BY preferred_time`, date,
	)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Age,
			&a.Condition, &a.Urgency, &a.PreferredDate, &a.PreferredTime, &a.Notes,
			&a.Status, &a.AssignedNurse, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SlotTaken reports whether a non-cancelled appointment already holds the
// date+slot pair. excludeID skips the appointment being rescheduled.
func (s *Store) SlotTaken(ctx context.Context, date, slot, excludeID string) (bool, error) {
	q := `SELECT EXISTS(
		SELECT 1 FROM appointments
		WHERE preferred_date = $1::date
		  AND preferred_time = $2
		  AND status <> 'cancelled'`
	args := []any{date, slot}

	if excludeID != "" {
		q += ` AND id <> $3`
		args = append(args, excludeID)
	}
	q += `)`

	var exists bool
	err := s.pool.QueryRow(ctx, q, args...).Scan(&exists)
	return exists, wrapErr(err)
}

func (s *Store) UpdateAppointment(ctx context.Context, a *model.Appointment) error {
	err := s.pool.QueryRow(ctx,
		`UPDATE appointments
		 SET first_name=$1, last_name=$2, email=$3, phone=$4, age=$5,
		     condition=$6, urgency=$7, preferred_date=$8::date, preferred_time=$9,
		     notes=$10, status=$11, assigned_nurse=$12, updated_at=NOW()
		 WHERE id=$13
		 RETURNING updated_at`,
		a.FirstName, a.LastName, a.Email, a.Phone, a.Age, a.Condition, a.Urgency,
		a.PreferredDate, a.PreferredTime, a.Notes, a.Status, a.AssignedNurse, a.ID,
	).Scan(&a.UpdatedAt)
	return wrapErr(err)
}

// DeleteAppointment is a hard delete.
func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
