package attendance

import "context"

type AttendanceService interface {
	Mark(ctx context.Context, employeeID string, req MarkAttendanceRequest) (AttendanceResponse, error)
}
