package models

// Professor teaches courses within a department.
type Professor struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	DepartmentID int64  `db:"department_id" json:"department_id"`
}
