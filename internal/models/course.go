package models

// Course is an offered class with a hard capacity and a live enrolled count.
// The enrolled counter is only ever mutated through the store's conditional
// update primitives, which keep 0 <= enrolled <= capacity.
type Course struct {
	ID           int64  `db:"id" json:"id"`
	Code         string `db:"code" json:"code"`
	Name         string `db:"name" json:"name"`
	Credits      int    `db:"credits" json:"credits"`
	Capacity     int    `db:"capacity" json:"capacity"`
	Enrolled     int    `db:"enrolled" json:"enrolled"`
	ProfessorID  int64  `db:"professor_id" json:"professor_id"`
	DepartmentID int64  `db:"department_id" json:"department_id"`
}

// SeatsLeft returns the number of free seats.
func (c Course) SeatsLeft() int {
	return c.Capacity - c.Enrolled
}

// CourseListItem is a course enriched with its formatted schedule, as
// returned by listings and the student timetable.
type CourseListItem struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Code         string  `db:"code" json:"code"`
	Credits      int     `db:"credits" json:"credits"`
	Capacity     int     `db:"capacity" json:"capacity"`
	Enrolled     int     `db:"enrolled" json:"enrolled"`
	ProfessorID  int64   `db:"professor_id" json:"professor_id"`
	DepartmentID int64   `db:"department_id" json:"department_id"`
	Schedule     *string `db:"-" json:"schedule"`
}

// ConflictingCourse identifies an enrolled course whose schedule overlaps
// the one being requested.
type ConflictingCourse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Schedule string `json:"schedule"`
}
