package models

// Student represents a learner who can register for courses.
type Student struct {
	ID           int64  `db:"id" json:"id"`
	StudentID    string `db:"student_id" json:"student_id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	DepartmentID int64  `db:"department_id" json:"department_id"`
}

// StudentSchedule is the weekly timetable projection for one student.
type StudentSchedule struct {
	StudentID    int64            `json:"student_id"`
	StudentName  string           `json:"student_name"`
	TotalCredits int              `json:"total_credits"`
	Courses      []CourseListItem `json:"courses"`
}
