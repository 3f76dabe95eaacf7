package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jordansepetys/AibaTS/errors"
	"github.com/jordansepetys/AibaTS/internal/adapter/dto/meeting"
	"github.com/jordansepetys/AibaTS/internal/adapter/presenter"
	ucerrors "github.com/jordansepetys/AibaTS/internal/usecase/errors"
	searchUsecase "github.com/jordansepetys/AibaTS/internal/usecase/search"
)

// Meeting handles query and lookup requests against project indexes
type Meeting struct {
	searchService searchUsecase.Service
	logger        *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(searchService searchUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		searchService: searchService,
		logger:        logger,
	}
}

// Ask handles POST /projects/:project/query
// @Summary      Ask a question about a project's meetings
// @Description  Parses a natural-language question and returns ranked meetings with excerpts
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        project  path      string              true  "Project name"
// @Param        request  body      meeting.AskRequest  true  "Question to answer"
// @Success      200      {object}  meeting.AskResponse
// @Failure      400      {object}  map[string]interface{}  "No searchable terms in the question"
// @Failure      404      {object}  map[string]interface{}  "Project has no index"
// @Router       /projects/{project}/query [post]
func (h *Meeting) Ask(c echo.Context) error {
	projectName := c.Param("project")

	var req meeting.AskRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	answer, err := h.searchService.Ask(c.Request().Context(), projectName, req.Question, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, mapQueryError(projectName, req.Question, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToAskResponse(answer))
}

// GetMeeting handles GET /projects/:project/meetings/:id
// @Summary      Get one indexed meeting
// @Tags         Meetings
// @Produce      json
// @Param        project  path      string  true  "Project name"
// @Param        id       path      string  true  "Meeting ID"
// @Success      200      {object}  meeting.MeetingResponse
// @Failure      404      {object}  map[string]interface{}  "Meeting or index not found"
// @Router       /projects/{project}/meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	projectName := c.Param("project")
	meetingID := c.Param("id")

	record, err := h.searchService.GetMeeting(c.Request().Context(), projectName, meetingID)
	if err != nil {
		if stdErrors.Is(err, ucerrors.ErrMeetingNotFound) {
			return HandleError(h.logger, c, errors.ErrMeetingNotFound(meetingID))
		}
		return HandleError(h.logger, c, mapIndexError(projectName, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(record))
}

// GetIndexStats handles GET /projects/:project/index
// @Summary      Get index summary for a project
// @Tags         Index
// @Produce      json
// @Param        project  path      string  true  "Project name"
// @Success      200      {object}  meeting.IndexStatsResponse
// @Failure      404      {object}  map[string]interface{}  "Project has no index"
// @Router       /projects/{project}/index [get]
func (h *Meeting) GetIndexStats(c echo.Context) error {
	projectName := c.Param("project")

	index, err := h.searchService.GetIndex(c.Request().Context(), projectName)
	if err != nil {
		return HandleError(h.logger, c, mapIndexError(projectName, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToIndexStatsResponse(index))
}
