package models

import "time"

type Review struct {
	ID            string    `json:"id"`
	CourseID      string    `json:"course_id"`
	StudentID     string    `json:"student_id"`
	StudentName   string    `json:"student_name"`
	StudentAvatar string    `json:"student_avatar"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}
