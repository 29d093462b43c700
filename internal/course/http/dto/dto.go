// Package dto contains request and response payloads for the course HTTP API.
package dto

import (
	"github.com/allisson/forumhub/internal/course/domain"
	"github.com/allisson/forumhub/internal/course/usecase"
)

// CourseRequest is the payload for creating or updating a course.
type CourseRequest struct {
	Name     string `json:"nome"`
	Category string `json:"categoria"`
}

// CourseResponse represents a course in API responses.
type CourseResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Category string `json:"categoria"`
}

// ToCourseInput converts a CourseRequest to a use case input.
func ToCourseInput(req CourseRequest) usecase.CourseInput {
	return usecase.CourseInput{
		Name:     req.Name,
		Category: req.Category,
	}
}

// ToCourseResponse converts a domain course to a response payload.
func ToCourseResponse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:       course.ID,
		Name:     course.Name,
		Category: course.Category,
	}
}

// ToCourseResponseList converts a list of domain courses to response payloads.
func ToCourseResponseList(courses []*domain.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, ToCourseResponse(course))
	}
	return responses
}
