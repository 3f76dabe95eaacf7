package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jordansepetys/AibaTS/errors"
	"github.com/jordansepetys/AibaTS/internal/adapter/dto/meeting"
	"github.com/jordansepetys/AibaTS/internal/adapter/presenter"
	indexerUsecase "github.com/jordansepetys/AibaTS/internal/usecase/indexer"
)

// Index handles index build and maintenance requests
type Index struct {
	indexService indexerUsecase.Service
	logger       *zap.Logger
}

// NewIndexHandler creates a new index handler
func NewIndexHandler(indexService indexerUsecase.Service, logger *zap.Logger) *Index {
	return &Index{
		indexService: indexService,
		logger:       logger,
	}
}

// Build handles POST /projects/:project/index
// @Summary      Build or refresh a project's meeting index
// @Description  Scans meeting artifacts and rebuilds the index. Incremental unless force=true.
// @Tags         Index
// @Produce      json
// @Param        project  path      string  true   "Project name"
// @Param        force    query     bool    false  "Rebuild from scratch"
// @Success      200      {object}  meeting.BuildResponse
// @Failure      500      {object}  map[string]interface{}  "Index could not be persisted"
// @Router       /projects/{project}/index [post]
func (h *Index) Build(c echo.Context) error {
	projectName := c.Param("project")

	// Echo only binds query params on GET/DELETE, so read force directly.
	force, _ := strconv.ParseBool(c.QueryParam("force"))

	report, err := h.indexService.Build(c.Request().Context(), projectName, force)
	if err != nil {
		// The report still describes what was processed before the
		// persistence failure.
		return HandleError(h.logger, c, mapIndexError(projectName, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToBuildResponse(report))
}

// UpdateMeeting handles POST /projects/:project/index/meetings
// @Summary      Upsert one meeting into a project's index
// @Tags         Index
// @Accept       json
// @Produce      json
// @Param        project  path      string                         true  "Project name"
// @Param        request  body      meeting.UpdateMeetingRequest   true  "Meeting artifact paths"
// @Success      200      {object}  meeting.UpdateResponse
// @Failure      500      {object}  map[string]interface{}  "Index could not be persisted"
// @Router       /projects/{project}/index/meetings [post]
func (h *Index) UpdateMeeting(c echo.Context) error {
	projectName := c.Param("project")

	var req meeting.UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	updated, err := h.indexService.UpdateSingle(
		c.Request().Context(), projectName, req.MeetingID, req.NotesPath, req.TranscriptPath)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrIndexUpdateFailed(req.MeetingID, err))
	}

	return HandleSuccess(h.logger, c, &meeting.UpdateResponse{
		MeetingID: req.MeetingID,
		Updated:   updated,
	})
}

// ListProjects handles GET /projects
// @Summary      List projects with a persisted index
// @Tags         Index
// @Produce      json
// @Success      200  {object}  meeting.ProjectListResponse
// @Router       /projects [get]
func (h *Index) ListProjects(c echo.Context) error {
	projects, err := h.indexService.ListProjects(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("list projects", err))
	}

	return HandleSuccess(h.logger, c, &meeting.ProjectListResponse{
		Projects: projects,
	})
}
