package attendance

import "context"

type AttendanceRepository interface {
	// Upsert creates the record for (employee, date) or overwrites the
	// existing one's status, times, and notes.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)
}
