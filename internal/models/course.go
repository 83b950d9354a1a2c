package models

import "time"

type Category string

const (
	CategoryWebDevelopment    Category = "web-development"
	CategoryDataScience       Category = "data-science"
	CategoryUIUXDesign        Category = "ui-ux-design"
	CategoryMobileDevelopment Category = "mobile-development"
	CategoryBusiness          Category = "business"
	CategoryMarketing         Category = "marketing"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

type Course struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Description      string     `json:"description"`
	Thumbnail        string     `json:"thumbnail"`
	Instructor       Instructor `json:"instructor"`
	Category         Category   `json:"category"`
	Level            Level      `json:"level"`
	Price            float64    `json:"price"`
	Duration         int        `json:"duration"`
	LessonsCount     int        `json:"lessons_count"`
	Rating           float64    `json:"rating"`
	ReviewsCount     int        `json:"reviews_count"`
	EnrolledCount    int        `json:"enrolled_count"`
	Modules          []Module   `json:"modules"`
	WhatYouWillLearn []string   `json:"what_you_will_learn"`
	CreatedAt        time.Time  `json:"created_at"`
}

// CoursePreview is the list projection served by the catalog endpoints,
// without the module tree.
type CoursePreview struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Thumbnail      string    `json:"thumbnail"`
	InstructorName string    `json:"instructor_name"`
	Category       Category  `json:"category"`
	Level          Level     `json:"level"`
	Price          float64   `json:"price"`
	Duration       int       `json:"duration"`
	LessonsCount   int       `json:"lessons_count"`
	Rating         float64   `json:"rating"`
	ReviewsCount   int       `json:"reviews_count"`
	EnrolledCount  int       `json:"enrolled_count"`
}

func (c *Course) Preview() CoursePreview {
	return CoursePreview{
		ID:             c.ID,
		Title:          c.Title,
		Slug:           c.Slug,
		Description:    c.Description,
		Thumbnail:      c.Thumbnail,
		InstructorName: c.Instructor.Name,
		Category:       c.Category,
		Level:          c.Level,
		Price:          c.Price,
		Duration:       c.Duration,
		LessonsCount:   c.LessonsCount,
		Rating:         c.Rating,
		ReviewsCount:   c.ReviewsCount,
		EnrolledCount:  c.EnrolledCount,
	}
}

type Instructor struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Avatar        string  `json:"avatar"`
	Bio           string  `json:"bio"`
	CoursesCount  int     `json:"courses_count"`
	StudentsCount int     `json:"students_count"`
	Rating        float64 `json:"rating"`
}
