package models

type Student struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Avatar      string   `json:"avatar"`
	Enrollments []string `json:"enrollments"`
	Favorites   []string `json:"favorites"`
}
