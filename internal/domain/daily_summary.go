package domain

import "time"

// DailySummary records a department's employee headcount at snapshot time.
// Rows are append-only; nothing in the system updates or deletes them.
type DailySummary struct {
	ID            int64
	DepartmentID  int64
	EmployeeCount int
	Timestamp     time.Time
}
