package models

// EnrollmentStats summarizes a learner's dashboard.
type EnrollmentStats struct {
	TotalCourses     int `json:"totalCourses"`
	CompletedCourses int `json:"completedCourses"`
	InProgress       int `json:"inProgress"`
	TotalHours       int `json:"totalHours"`
}

// PlatformStats is shown on the landing page.
type PlatformStats struct {
	TotalCourses     int64 `json:"totalCourses"`
	TotalStudents    int64 `json:"totalStudents"`
	TotalInstructors int64 `json:"totalInstructors"`
	// enrollments since the start of the current week (Sunday, server local time)
	EnrollmentsThisWeek int64 `json:"enrollmentsThisWeek"`
}
