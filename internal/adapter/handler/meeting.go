package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/engagement-tracker/internal/adapter/dto/common"
	meetingDTO "github.com/johnquangdev/engagement-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/engagement-tracker/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/engagement-tracker/internal/usecase/meeting"
)

// Meeting handles meeting, participant and activity HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /meetings
// @Summary      Create a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meetingDTO.CreateMeetingRequest  true  "Meeting"
// @Success      201      {object}  common.SuccessResponse{data=meetingDTO.MeetingResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingDTO.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.CreateMeeting(c.Request().Context(), meetingUsecase.CreateMeetingInput{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToMeetingResponse(m))
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=[]meetingDTO.MeetingResponse}
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	meetings, err := h.meetingService.ListMeetings(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse{data=meetingDTO.MeetingResponse}
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.GetMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// UpdateMeeting handles PUT /meetings/:id. Only the fields present are changed.
// @Summary      Update a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id       path      int                              true  "Meeting ID"
// @Param        request  body      meetingDTO.UpdateMeetingRequest  true  "Fields to change"
// @Success      200      {object}  common.SuccessResponse{data=meetingDTO.MeetingResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse  "Meeting not found"
// @Router       /meetings/{id} [put]
func (h *Meeting) UpdateMeeting(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.UpdateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.UpdateMeeting(c.Request().Context(), meetingID, meetingUsecase.UpdateMeetingInput{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// DeleteMeeting handles DELETE /meetings/:id
// @Summary      Delete a meeting
// @Description  Deletes the meeting with its participants and activity logs
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse{data=common.MessageResponse}
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Router       /meetings/{id} [delete]
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.DeleteMeeting(c.Request().Context(), meetingID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.MessageResponse{Message: "Meeting deleted successfully"})
}
