package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestMarkAttendanceRequestValidate(t *testing.T) {
	cases := []struct {
		name      string
		req       MarkAttendanceRequest
		wantField string
	}{
		{
			name: "present with times",
			req: MarkAttendanceRequest{
				Status:      "present",
				CheckInTime: strPtr("08:30"),
			},
		},
		{
			name: "absent without times",
			req:  MarkAttendanceRequest{Status: "absent"},
		},
		{
			name:      "missing status",
			req:       MarkAttendanceRequest{},
			wantField: "status",
		},
		{
			name:      "unknown status",
			req:       MarkAttendanceRequest{Status: "late"},
			wantField: "status",
		},
		{
			name:      "bad date",
			req:       MarkAttendanceRequest{Status: "present", AttendanceDate: strPtr("15-01-2024")},
			wantField: "attendance_date",
		},
		{
			name:      "bad check-in time",
			req:       MarkAttendanceRequest{Status: "present", CheckInTime: strPtr("25:00")},
			wantField: "check_in_time",
		},
		{
			name:      "bad check-out time",
			req:       MarkAttendanceRequest{Status: "present", CheckOutTime: strPtr("noon")},
			wantField: "check_out_time",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.wantField)
		})
	}
}

func TestMarkAttendanceRequestDate(t *testing.T) {
	now := time.Date(2024, 1, 15, 13, 45, 0, 0, time.UTC)

	withDate := MarkAttendanceRequest{Status: "present", AttendanceDate: strPtr("2024-01-10")}
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), withDate.Date(now))

	withoutDate := MarkAttendanceRequest{Status: "present"}
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), withoutDate.Date(now))
}
