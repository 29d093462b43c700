// Package http provides HTTP handlers for answer operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/forumhub/internal/answer/http/dto"
	"github.com/allisson/forumhub/internal/answer/usecase"
	"github.com/allisson/forumhub/internal/httputil"
)

// AnswerHandler handles answer-related HTTP requests.
type AnswerHandler struct {
	answerUseCase usecase.UseCase
	logger        *slog.Logger
}

// NewAnswerHandler creates a new AnswerHandler.
func NewAnswerHandler(answerUseCase usecase.UseCase, logger *slog.Logger) *AnswerHandler {
	return &AnswerHandler{
		answerUseCase: answerUseCase,
		logger:        logger,
	}
}

// ListHandler returns a page of answers.
// GET /respostas
func (h *AnswerHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	answers, err := h.answerUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAnswerResponseList(answers))
}

// ListByTopicHandler returns answers posted on a topic.
// GET /respostas/topico/:topicoId
func (h *AnswerHandler) ListByTopicHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	topicID, err := strconv.ParseInt(c.Param("topicoId"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid topicoId parameter: must be an integer"), h.logger)
		return
	}

	answers, err := h.answerUseCase.ListByTopic(c.Request.Context(), topicID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAnswerResponseList(answers))
}

// GetHandler returns a single answer.
// GET /respostas/:id
func (h *AnswerHandler) GetHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	answer, err := h.answerUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAnswerResponse(answer))
}

// CreateHandler posts an answer on a topic.
// POST /respostas
func (h *AnswerHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	answer, err := h.answerUseCase.Create(c.Request.Context(), dto.ToCreateAnswerInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAnswerResponse(answer))
}

// UpdateHandler edits an answer.
// PUT /respostas/:id
func (h *AnswerHandler) UpdateHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	answer, err := h.answerUseCase.Update(c.Request.Context(), id, dto.ToUpdateAnswerInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAnswerResponse(answer))
}

// DeleteHandler removes an answer.
// DELETE /respostas/:id
func (h *AnswerHandler) DeleteHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.answerUseCase.Delete(c.Request.Context(), id); err != nil {
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
