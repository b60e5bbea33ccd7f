package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
	domain "github.com/VelvetStudioPL/salon-scheduler/internal/domain/booking"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/models"
)

type BookingSQLRepository struct {
	db db.QueryAdapter
}

func NewBookingSQLRepository(adapter db.QueryAdapter) *BookingSQLRepository {
	return &BookingSQLRepository{db: adapter}
}

// --------------------------------------------------
// Slot store
// --------------------------------------------------

func (r *BookingSQLRepository) OpenSlot(ctx context.Context, date, timeOfDay string) error {
	query := r.db.InsertIgnore(
		"available_slots",
		[]string{"date", "time"},
		[]string{"date", "time"},
	)
	_, err := r.db.Exec(ctx, query, date, timeOfDay)
	return err
}

func (r *BookingSQLRepository) CloseSlot(ctx context.Context, date, timeOfDay string) error {
	_, err := r.db.Exec(ctx,
		"DELETE FROM available_slots WHERE date = ? AND time = ?",
		date, timeOfDay,
	)
	return err
}

func (r *BookingSQLRepository) SlotExists(ctx context.Context, date, timeOfDay string) (bool, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		"SELECT id FROM available_slots WHERE date = ? AND time = ?",
		date, timeOfDay,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *BookingSQLRepository) ListSlotTimes(ctx context.Context, date string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT time FROM available_slots WHERE date = ? ORDER BY time",
		date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	times := []string{}
	for rows.Next() {
		var t timeCol
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, string(t))
	}
	return times, rows.Err()
}

func (r *BookingSQLRepository) ListDatesWithSlots(ctx context.Context, fromDate string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT DISTINCT date FROM available_slots WHERE date >= ? ORDER BY date",
		fromDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var d dateCol
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, string(d))
	}
	return dates, rows.Err()
}

// --------------------------------------------------
// Appointment ledger
// --------------------------------------------------

// CreateAppointment inserts the row. A unique-constraint violation on
// (date, time) propagates as db.ErrConstraint for the service to translate.
func (r *BookingSQLRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO appointments (user_id, date, time, notes, status) VALUES (?, ?, ?, ?, ?)",
		ap.UserID, ap.Date, ap.Time, ap.Notes, ap.Status,
	)
	return err
}

func (r *BookingSQLRepository) HasActiveAppointment(ctx context.Context, date, timeOfDay string) (bool, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		"SELECT id FROM appointments WHERE date = ? AND time = ? AND status != 'cancelled'",
		date, timeOfDay,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *BookingSQLRepository) ListBookedTimes(ctx context.Context, date string) ([]domain.BookedSlot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.time, u.first_name, u.last_name
		FROM appointments a
		JOIN users u ON a.user_id = u.id
		WHERE a.date = ? AND a.status != 'cancelled'
		ORDER BY a.time`,
		date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	booked := []domain.BookedSlot{}
	for rows.Next() {
		var (
			t  timeCol
			bs domain.BookedSlot
		)
		if err := rows.Scan(&t, &bs.FirstName, &bs.LastName); err != nil {
			return nil, err
		}
		bs.Time = string(t)
		booked = append(booked, bs)
	}
	return booked, rows.Err()
}

func (r *BookingSQLRepository) ListAppointmentsForUser(ctx context.Context, userID int64) ([]models.Appointment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, date, time, notes, status, created_at
		FROM appointments
		WHERE user_id = ?
		ORDER BY date DESC, time DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		ap := models.Appointment{UserID: userID}
		var (
			d     dateCol
			t     timeCol
			notes sql.NullString
		)
		if err := rows.Scan(&ap.ID, &d, &t, &notes, &ap.Status, &ap.CreatedAt); err != nil {
			return nil, err
		}
		ap.Date, ap.Time, ap.Notes = string(d), string(t), notes.String
		appointments = append(appointments, ap)
	}
	return appointments, rows.Err()
}

func (r *BookingSQLRepository) ListAppointments(ctx context.Context, date, search string) ([]domain.AdminAppointment, error) {
	query := `
		SELECT a.id, a.user_id, a.date, a.time, a.notes, a.status, a.created_at,
		       u.first_name, u.last_name, u.email, u.phone,
		       CASE WHEN u.password_hash = 'manual_account' THEN 'manual' ELSE 'registered' END
		FROM appointments a
		JOIN users u ON a.user_id = u.id
		WHERE 1=1`
	params := []any{}

	if date != "" {
		query += " AND a.date = ?"
		params = append(params, date)
	}
	if search != "" {
		query += " AND (LOWER(u.first_name) LIKE LOWER(?) OR LOWER(u.last_name) LIKE LOWER(?))"
		pattern := "%" + search + "%"
		params = append(params, pattern, pattern)
	}
	query += " ORDER BY a.date, a.time"

	rows, err := r.db.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := []domain.AdminAppointment{}
	for rows.Next() {
		var (
			row   domain.AdminAppointment
			d     dateCol
			t     timeCol
			notes sql.NullString
		)
		if err := rows.Scan(
			&row.ID, &row.UserID, &d, &t, &notes, &row.Status, &row.CreatedAt,
			&row.FirstName, &row.LastName, &row.Email, &row.Phone, &row.AccountType,
		); err != nil {
			return nil, err
		}
		row.Date, row.Time, row.Notes = string(d), string(t), notes.String
		appointments = append(appointments, row)
	}
	return appointments, rows.Err()
}

func (r *BookingSQLRepository) AppointmentStatus(ctx context.Context, id int64) (domain.Status, error) {
	var status string
	err := r.db.QueryRow(ctx, "SELECT status FROM appointments WHERE id = ?", id).Scan(&status)
	if err == sql.ErrNoRows {
		return "", httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if err != nil {
		return "", err
	}
	return domain.Status(status), nil
}

func (r *BookingSQLRepository) ConfirmAppointment(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx,
		"UPDATE appointments SET status = 'confirmed', updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		id,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// MySQL reports 0 affected rows for a no-change update, so
		// distinguish "absent" from "already confirmed".
		return r.assertAppointmentExists(ctx, id)
	}
	return nil
}

func (r *BookingSQLRepository) DeleteAppointment(ctx context.Context, id int64) (string, error) {
	var d dateCol
	err := r.db.QueryRow(ctx, "SELECT date FROM appointments WHERE id = ?", id).Scan(&d)
	if err == sql.ErrNoRows {
		return "", httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if err != nil {
		return "", err
	}

	if _, err := r.db.Exec(ctx, "DELETE FROM appointments WHERE id = ?", id); err != nil {
		return "", err
	}
	return string(d), nil
}

func (r *BookingSQLRepository) assertAppointmentExists(ctx context.Context, id int64) error {
	var found int64
	err := r.db.QueryRow(ctx, "SELECT id FROM appointments WHERE id = ?", id).Scan(&found)
	if err == sql.ErrNoRows {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return err
}

// --------------------------------------------------
// Manual accounts
// --------------------------------------------------

func (r *BookingSQLRepository) FindUserIDByEmail(ctx context.Context, email string) (int64, bool, error) {
	var id int64
	err := r.db.QueryRow(ctx, "SELECT id FROM users WHERE email = ?", email).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (r *BookingSQLRepository) CreateManualUser(ctx context.Context, firstName, lastName, phone, email string) (int64, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (first_name, last_name, phone, email, password_hash, is_active, role)
		VALUES (?, ?, ?, ?, ?, ?, 'user')`,
		firstName, lastName, phone, email, models.ManualAccountSentinel, true,
	)
	if err != nil {
		return 0, err
	}

	// LAST_INSERT_ID and RETURNING differ per dialect; the fresh unique email
	// is the portable way back to the id.
	id, found, err := r.FindUserIDByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("manual user %q vanished after insert", email)
	}
	return id, nil
}

// --------------------------------------------------
// Column scanners
// --------------------------------------------------

// DATE and TIME columns come back as time.Time, string or []byte depending on
// the driver. These scanners normalize them to the calendar-date and
// time-of-day strings the booking core works with, without any timezone math.

type dateCol string

func (d *dateCol) Scan(v any) error {
	switch val := v.(type) {
	case time.Time:
		*d = dateCol(val.Format("2006-01-02"))
	case []byte:
		*d = dateCol(truncateDate(string(val)))
	case string:
		*d = dateCol(truncateDate(val))
	default:
		return fmt.Errorf("cannot scan %T into date column", v)
	}
	return nil
}

type timeCol string

func (t *timeCol) Scan(v any) error {
	switch val := v.(type) {
	case time.Time:
		*t = timeCol(val.Format("15:04:05"))
	case []byte:
		*t = timeCol(truncateTime(string(val)))
	case string:
		*t = timeCol(truncateTime(val))
	default:
		return fmt.Errorf("cannot scan %T into time column", v)
	}
	return nil
}

func truncateDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func truncateTime(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// Compile-time check
var _ domain.Repository = (*BookingSQLRepository)(nil)
