package app_errors

import "errors"

var ErrCourseNotFound = errors.New("course not found")
var ErrLessonNotFound = errors.New("lesson not found")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrNotEnrolled = errors.New("not enrolled in course")
var ErrLessonLocked = errors.New("lesson requires enrollment")
var ErrTokenExpired = errors.New("token expired")
var ErrInvalidToken = errors.New("invalid token")
