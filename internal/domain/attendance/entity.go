package attendance

import "time"

// Attendance is one record per employee per day. The (EmployeeID, Date)
// pair is unique; repeated submissions for the same day overwrite the
// existing row.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	Status       Status
	CheckInTime  *string
	CheckOutTime *string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}
