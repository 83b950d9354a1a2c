package models

import "time"

type Enrollment struct {
	ID               string     `json:"id"`
	CourseID         string     `json:"course_id"`
	StudentID        string     `json:"student_id"`
	Progress         int        `json:"progress"`
	CompletedLessons []string   `json:"completed_lessons"`
	EnrolledAt       time.Time  `json:"enrolled_at"`
	CompletedAt      *time.Time `json:"completed_at"`
}

func (e *Enrollment) HasCompleted(lessonID string) bool {
	for _, id := range e.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}
