// Package http provides HTTP handlers for course operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/forumhub/internal/course/http/dto"
	"github.com/allisson/forumhub/internal/course/usecase"
	"github.com/allisson/forumhub/internal/httputil"
)

// CourseHandler handles course-related HTTP requests.
type CourseHandler struct {
	courseUseCase usecase.UseCase
	logger        *slog.Logger
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseUseCase usecase.UseCase, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{
		courseUseCase: courseUseCase,
		logger:        logger,
	}
}

// ListHandler returns a page of courses.
// GET /cursos
func (h *CourseHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	courses, err := h.courseUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseResponseList(courses))
}

// ListByCategoryHandler returns a page of courses in a category.
// GET /cursos/categoria/:categoria
func (h *CourseHandler) ListByCategoryHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	courses, err := h.courseUseCase.ListByCategory(c.Request.Context(), c.Param("categoria"), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseResponseList(courses))
}

// SearchHandler returns courses whose name contains the query term.
// GET /cursos/busca?nome=
func (h *CourseHandler) SearchHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	term := c.Query("nome")
	if term == "" {
		httputil.HandleBadRequestGin(c, fmt.Errorf("missing nome query parameter"), h.logger)
		return
	}

	courses, err := h.courseUseCase.SearchByName(c.Request.Context(), term, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseResponseList(courses))
}

// GetHandler returns a single course.
// GET /cursos/:id
func (h *CourseHandler) GetHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	course, err := h.courseUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

// CreateHandler registers a new course.
// POST /cursos
func (h *CourseHandler) CreateHandler(c *gin.Context) {
	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	course, err := h.courseUseCase.Create(c.Request.Context(), dto.ToCourseInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCourseResponse(course))
}

// UpdateHandler changes a course.
// PUT /cursos/:id
func (h *CourseHandler) UpdateHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	course, err := h.courseUseCase.Update(c.Request.Context(), id, dto.ToCourseInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

// DeleteHandler removes a course.
// DELETE /cursos/:id
func (h *CourseHandler) DeleteHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.courseUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id parameter: must be an integer")
	}
	return id, nil
}
