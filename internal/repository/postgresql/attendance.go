package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wagebook/wagebook-backend-go/internal/domain/attendance"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository. The UNIQUE constraint
// on (employee_id, attendance_date) makes repeat submissions overwrite the
// existing row, so there is never more than one record per employee per day.
func (a *attendanceRepositoryImpl) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, attendance_date, status, check_in_time, check_out_time, notes
		) VALUES (
			$1, $2, $3, $4, $5::time, $6::time, $7
		)
		ON CONFLICT (employee_id, attendance_date) DO UPDATE SET
			status = EXCLUDED.status,
			check_in_time = EXCLUDED.check_in_time,
			check_out_time = EXCLUDED.check_out_time,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, employee_id, attendance_date, status,
			check_in_time::text, check_out_time::text, notes, created_at, updated_at
	`

	var upserted attendance.Attendance
	err := q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		record.EmployeeID,
		record.Date,
		record.Status,
		record.CheckInTime,
		record.CheckOutTime,
		record.Notes,
	).Scan(
		&upserted.ID, &upserted.EmployeeID, &upserted.Date, &upserted.Status,
		&upserted.CheckInTime, &upserted.CheckOutTime, &upserted.Notes,
		&upserted.CreatedAt, &upserted.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return upserted, nil
}
