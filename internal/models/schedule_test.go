package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleOverlaps(t *testing.T) {
	base := Schedule{DayOfWeek: DayMonday, StartTime: ClockTime(9, 0), EndTime: ClockTime(10, 30)}

	tests := []struct {
		name  string
		other Schedule
		want  bool
	}{
		{"identical slot", Schedule{DayOfWeek: DayMonday, StartTime: ClockTime(9, 0), EndTime: ClockTime(10, 30)}, true},
		{"contained slot", Schedule{DayOfWeek: DayMonday, StartTime: ClockTime(9, 30), EndTime: ClockTime(10, 0)}, true},
		{"overlapping tail", Schedule{DayOfWeek: DayMonday, StartTime: ClockTime(10, 0), EndTime: ClockTime(11, 30)}, true},
		{"overlapping head", Schedule{DayOfWeek: DayMonday, StartTime: ClockTime(8, 0), EndTime: ClockTime(9, 1)}, true},
		{"back to back after", Schedule{DayOfWeek: DayMonday, StartTime: ClockTime(10, 30), EndTime: ClockTime(12, 0)}, false},
		{"back to back before", Schedule{DayOfWeek: DayMonday, StartTime: ClockTime(7, 30), EndTime: ClockTime(9, 0)}, false},
		{"other day", Schedule{DayOfWeek: DayTuesday, StartTime: ClockTime(9, 0), EndTime: ClockTime(10, 30)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestScheduleString(t *testing.T) {
	s := Schedule{DayOfWeek: DayFriday, StartTime: ClockTime(8, 0), EndTime: ClockTime(9, 30)}
	assert.Equal(t, "FRI 08:00-09:30", s.String())
}

func TestEnrollmentStatusValid(t *testing.T) {
	assert.True(t, EnrollmentStatusEnrolled.Valid())
	assert.True(t, EnrollmentStatusCancelled.Valid())
	assert.False(t, EnrollmentStatus("WAITLISTED").Valid())
}
