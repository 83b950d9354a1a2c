package catalog

import (
	"embed"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/Dhaneyl/course-platform/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var seedFS embed.FS

const lessonsPerModule = 5

type seedInstructor struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Avatar        string  `yaml:"avatar"`
	Bio           string  `yaml:"bio"`
	CoursesCount  int     `yaml:"courses_count"`
	StudentsCount int     `yaml:"students_count"`
	Rating        float64 `yaml:"rating"`
}

type seedCourse struct {
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	Category         string   `yaml:"category"`
	WhatYouWillLearn []string `yaml:"what_you_will_learn"`
}

type seedFile struct {
	Instructors []seedInstructor `yaml:"instructors"`
	Courses     []seedCourse     `yaml:"courses"`
}

var levels = []models.Level{models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a course URL slug from its title: lowercased, runs of
// non-alphanumeric characters collapsed to a single dash.
func Slugify(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func loadSeedFile() (*seedFile, error) {
	raw, err := seedFS.ReadFile("data/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed: %w", err)
	}

	var sf seedFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}
	if len(sf.Instructors) == 0 || len(sf.Courses) == 0 {
		return nil, fmt.Errorf("catalog seed is empty")
	}
	return &sf, nil
}

// generate crosses the course templates with randomized numeric fields.
// Lesson counts, durations and the derived course totals stay internally
// consistent regardless of the seed.
func generate(sf *seedFile, rng *rand.Rand, now time.Time) ([]models.Course, map[string][]models.Review) {
	courses := make([]models.Course, 0, len(sf.Courses))
	reviews := make(map[string][]models.Review, len(sf.Courses))

	for i, tpl := range sf.Courses {
		si := sf.Instructors[i%len(sf.Instructors)]
		courseID := fmt.Sprintf("course-%d", i+1)

		lessonsCount := rng.Intn(20) + 10
		modules, duration := generateModules(courseID, lessonsCount, rng)

		price := 0.0
		if i%3 != 0 {
			price = float64(rng.Intn(150) + 29)
		}

		course := models.Course{
			ID:          courseID,
			Title:       tpl.Title,
			Slug:        Slugify(tpl.Title),
			Description: tpl.Description,
			Thumbnail:   fmt.Sprintf("https://picsum.photos/seed/%d/640/360", i+1),
			Instructor: models.Instructor{
				ID:            si.ID,
				Name:          si.Name,
				Avatar:        si.Avatar,
				Bio:           si.Bio,
				CoursesCount:  si.CoursesCount,
				StudentsCount: si.StudentsCount,
				Rating:        si.Rating,
			},
			Category:         models.Category(tpl.Category),
			Level:            levels[i%len(levels)],
			Price:            price,
			Duration:         duration,
			LessonsCount:     lessonsCount,
			Rating:           math.Round((rng.Float64()*1.5+3.5)*10) / 10,
			ReviewsCount:     rng.Intn(500) + 50,
			EnrolledCount:    rng.Intn(5000) + 500,
			Modules:          modules,
			WhatYouWillLearn: tpl.WhatYouWillLearn,
			CreatedAt:        now.Add(-time.Duration(rng.Intn(365*24)) * time.Hour),
		}

		courses = append(courses, course)
		reviews[courseID] = generateReviews(&course, rng, now)
	}

	return courses, reviews
}

func generateModules(courseID string, lessonsCount int, rng *rand.Rand) ([]models.Module, int) {
	modulesCount := (lessonsCount + lessonsPerModule - 1) / lessonsPerModule
	modules := make([]models.Module, 0, modulesCount)

	duration := 0
	lessonIndex := 1
	for m := 1; m <= modulesCount; m++ {
		lessonsInModule := lessonsCount - (m-1)*lessonsPerModule
		if lessonsInModule > lessonsPerModule {
			lessonsInModule = lessonsPerModule
		}

		lessons := make([]models.Lesson, 0, lessonsInModule)
		for l := 0; l < lessonsInModule; l++ {
			lessonDuration := rng.Intn(15) + 5
			duration += lessonDuration
			lessons = append(lessons, models.Lesson{
				ID:        fmt.Sprintf("%s-lesson-%d", courseID, lessonIndex),
				Title:     fmt.Sprintf("Lesson %d: Topic %d", lessonIndex, lessonIndex),
				Duration:  lessonDuration,
				VideoURL:  fmt.Sprintf("https://example.com/videos/%s/lesson-%d.mp4", courseID, lessonIndex),
				IsPreview: lessonIndex <= 2,
			})
			lessonIndex++
		}

		modules = append(modules, models.Module{
			ID:      fmt.Sprintf("%s-module-%d", courseID, m),
			Title:   fmt.Sprintf("Module %d: Section %d", m, m),
			Lessons: lessons,
		})
	}

	return modules, duration
}

func generateReviews(course *models.Course, rng *rand.Rand, now time.Time) []models.Review {
	count := course.ReviewsCount
	if count > 5 {
		count = 5
	}

	reviews := make([]models.Review, 0, count)
	for i := 1; i <= count; i++ {
		studentNum := rng.Intn(100) + 1
		reviews = append(reviews, models.Review{
			ID:            fmt.Sprintf("review-%s-%d", course.ID, i),
			CourseID:      course.ID,
			StudentID:     fmt.Sprintf("student-%d", studentNum),
			StudentName:   fmt.Sprintf("Student %d", studentNum),
			StudentAvatar: fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=student%d", studentNum),
			Rating:        rng.Intn(2) + 4,
			Comment:       "Great course! The instructor explains concepts clearly and the projects are very practical.",
			CreatedAt:     now.Add(-time.Duration(rng.Intn(180*24)) * time.Hour),
		})
	}
	return reviews
}
