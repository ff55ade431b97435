package models

import "fmt"

// DayOfWeek is a teaching day. Weekend slots are not scheduled.
type DayOfWeek string

// Teaching days.
const (
	DayMonday    DayOfWeek = "MON"
	DayTuesday   DayOfWeek = "TUE"
	DayWednesday DayOfWeek = "WED"
	DayThursday  DayOfWeek = "THU"
	DayFriday    DayOfWeek = "FRI"
)

// Weekdays lists the teaching days in order.
var Weekdays = []DayOfWeek{DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday}

// Valid reports whether the day is a known teaching day.
func (d DayOfWeek) Valid() bool {
	switch d {
	case DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday:
		return true
	}
	return false
}

// MinuteOfDay is a wall-clock time expressed as minutes after midnight.
type MinuteOfDay int16

// ClockTime builds a MinuteOfDay from hour and minute.
func ClockTime(hour, minute int) MinuteOfDay {
	return MinuteOfDay(hour*60 + minute)
}

// String renders the time as HH:MM.
func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Schedule is the weekly slot of a course, one-to-one with the course.
// The interval is half-open: [StartTime, EndTime).
type Schedule struct {
	ID        int64       `db:"id" json:"id"`
	CourseID  int64       `db:"course_id" json:"course_id"`
	DayOfWeek DayOfWeek   `db:"day_of_week" json:"day_of_week"`
	StartTime MinuteOfDay `db:"start_time" json:"start_time"`
	EndTime   MinuteOfDay `db:"end_time" json:"end_time"`
}

// Overlaps reports whether two schedules collide. Day equality is checked
// first; intervals touching end-to-start do not overlap.
func (s Schedule) Overlaps(other Schedule) bool {
	if s.DayOfWeek != other.DayOfWeek {
		return false
	}
	return s.StartTime < other.EndTime && other.StartTime < s.EndTime
}

// String renders the slot as "DAY HH:MM-HH:MM".
func (s Schedule) String() string {
	return fmt.Sprintf("%s %s-%s", s.DayOfWeek, s.StartTime, s.EndTime)
}
