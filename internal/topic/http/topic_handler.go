// Package http provides HTTP handlers for topic operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/forumhub/internal/httputil"
	"github.com/allisson/forumhub/internal/topic/http/dto"
	"github.com/allisson/forumhub/internal/topic/usecase"
)

// TopicHandler handles topic-related HTTP requests.
type TopicHandler struct {
	topicUseCase usecase.UseCase
	logger       *slog.Logger
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(topicUseCase usecase.UseCase, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{
		topicUseCase: topicUseCase,
		logger:       logger,
	}
}

// ListHandler returns a page of topics.
// GET /topicos
func (h *TopicHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	topics, err := h.topicUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToTopicResponseList(topics))
}

// ListByCourseHandler returns topics attached to the named course.
// GET /topicos/curso?nomeCurso=
func (h *TopicHandler) ListByCourseHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	courseName := c.Query("nomeCurso")
	if courseName == "" {
		httputil.HandleBadRequestGin(c, fmt.Errorf("missing nomeCurso query parameter"), h.logger)
		return
	}

	topics, err := h.topicUseCase.ListByCourseName(c.Request.Context(), courseName, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToTopicResponseList(topics))
}

// GetHandler returns a topic with its answers.
// GET /topicos/:id
func (h *TopicHandler) GetHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	detail, err := h.topicUseCase.GetDetail(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToTopicDetailResponse(detail))
}

// CreateHandler opens a new topic.
// POST /topicos
func (h *TopicHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	topic, err := h.topicUseCase.Create(c.Request.Context(), dto.ToCreateTopicInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTopicResponse(topic))
}

// UpdateHandler edits a topic's title and message.
// PUT /topicos/:id
func (h *TopicHandler) UpdateHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	topic, err := h.topicUseCase.Update(c.Request.Context(), id, dto.ToUpdateTopicInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToTopicResponse(topic))
}

// DeleteHandler removes a topic and its answers.
// DELETE /topicos/:id
func (h *TopicHandler) DeleteHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.topicUseCase.Delete(c.Request.Context(), id); err != nil {
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
