package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/engagement-tracker/errors"
	"github.com/johnquangdev/engagement-tracker/internal/adapter/presenter"
	"github.com/johnquangdev/engagement-tracker/internal/usecase/engagement"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
)

// Engagement handles scoring, silent contributor and report HTTP requests
type Engagement struct {
	engagementService engagement.Service
	silentThreshold   int
	logger            *zap.Logger
}

// NewEngagementHandler creates a new engagement handler. silentThreshold is
// used when a request does not pass one; a negative value falls back to
// engagement.DefaultSilentThreshold.
func NewEngagementHandler(engagementService engagement.Service, silentThreshold int, logger *zap.Logger) *Engagement {
	if silentThreshold < 0 {
		silentThreshold = engagement.DefaultSilentThreshold
	}
	return &Engagement{
		engagementService: engagementService,
		silentThreshold:   silentThreshold,
		logger:            logger,
	}
}

// CalculateEngagement handles POST /meetings/:id/calculate-engagement
// @Summary      Calculate engagement scores
// @Description  Recomputes and stores the engagement score of every participant
// @Tags         Engagement
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse{data=engagementDTO.CalculateEngagementResponse}
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Router       /meetings/{id}/calculate-engagement [post]
func (h *Engagement) CalculateEngagement(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	participants, err := h.engagementService.ComputeEngagement(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToCalculateEngagementResponse(participants))
}

// ListSilentContributors handles GET /meetings/:id/silent-contributors
// @Summary      List silent contributors
// @Description  Participants who spoke less than threshold seconds, with their other activity
// @Tags         Engagement
// @Produce      json
// @Param        id         path      int  true   "Meeting ID"
// @Param        threshold  query     int  false  "Speaking time threshold in seconds"  default(60)
// @Success      200        {object}  common.SuccessResponse{data=[]engagementDTO.SilentContributorResponse}
// @Failure      400        {object}  common.ErrorResponse
// @Failure      404        {object}  common.ErrorResponse  "Meeting or user not found"
// @Router       /meetings/{id}/silent-contributors [get]
func (h *Engagement) ListSilentContributors(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	threshold := h.silentThreshold
	if err := echo.QueryParamsBinder(c).Int("threshold", &threshold).BindError(); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("threshold must be an integer"))
	}

	contributors, err := h.engagementService.ListSilentContributors(c.Request().Context(), meetingID, threshold)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSilentContributorListResponse(contributors))
}

// ArchiveReport handles POST /meetings/:id/engagement-report
// @Summary      Archive an engagement report
// @Description  Writes the current scores as JSON to object storage. Scores are not recomputed.
// @Tags         Engagement
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      201  {object}  common.SuccessResponse{data=engagementDTO.ReportResponse}
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Failure      503  {object}  common.ErrorResponse  "Report storage is not configured"
// @Router       /meetings/{id}/engagement-report [post]
func (h *Engagement) ArchiveReport(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	report, err := h.engagementService.ArchiveReport(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, storageError("put report", err))
	}

	return HandleCreated(h.logger, c, presenter.ToReportResponse(report))
}

// ListReports handles GET /meetings/:id/engagement-reports
// @Summary      List archived engagement reports
// @Tags         Engagement
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse{data=[]engagementDTO.StoredReportResponse}
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Failure      503  {object}  common.ErrorResponse  "Report storage is not configured"
// @Router       /meetings/{id}/engagement-reports [get]
func (h *Engagement) ListReports(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	reports, err := h.engagementService.ListReports(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, storageError("list reports", err))
	}

	return HandleSuccess(h.logger, c, presenter.ToStoredReportListResponse(reports))
}

// storageError tags failures of the archive itself; known use case errors
// keep their own mapping
func storageError(operation string, err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return err
	}
	if stdErrors.Is(err, usecaseErrors.ErrReportStorageDisabled) ||
		stdErrors.Is(err, usecaseErrors.ErrInvalidInput) ||
		usecaseErrors.IsNotFound(err) {
		return err
	}
	return errors.ErrStorageFailed(operation, err)
}
