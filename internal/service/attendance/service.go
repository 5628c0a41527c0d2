package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/wagebook/wagebook-backend-go/internal/domain/attendance"
	"github.com/wagebook/wagebook-backend-go/internal/domain/employee"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Mark implements attendance.AttendanceService. The operation is
// idempotent per (employee, date): marking twice for the same day leaves
// one record reflecting the latest submission.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, employeeID string, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	record, err := a.attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID:   employeeID,
		Date:         req.Date(time.Now().UTC()),
		Status:       attendance.Status(req.Status),
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Notes:        req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("mark attendance: %w", err)
	}

	return attendance.ToResponse(record), nil
}
