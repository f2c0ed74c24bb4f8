package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	meetingDTO "github.com/johnquangdev/engagement-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/engagement-tracker/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/engagement-tracker/internal/usecase/meeting"
)

// AddParticipant handles POST /meetings/:id/participants
// @Summary      Add a participant
// @Tags         Participants
// @Accept       json
// @Produce      json
// @Param        id       path      int                               true  "Meeting ID"
// @Param        request  body      meetingDTO.AddParticipantRequest  true  "Participant"
// @Success      201      {object}  common.SuccessResponse{data=meetingDTO.ParticipantResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse  "Meeting or user not found"
// @Failure      409      {object}  common.ErrorResponse  "User already participates"
// @Router       /meetings/{id}/participants [post]
func (h *Meeting) AddParticipant(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.AddParticipantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	p, err := h.meetingService.AddParticipant(c.Request().Context(), meetingUsecase.AddParticipantInput{
		MeetingID: meetingID,
		UserID:    req.UserID,
		JoinTime:  req.JoinTime,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToParticipantResponse(p))
}

// ListParticipants handles GET /meetings/:id/participants
// @Summary      List participants
// @Tags         Participants
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse{data=[]meetingDTO.ParticipantResponse}
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Router       /meetings/{id}/participants [get]
func (h *Meeting) ListParticipants(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	participants, err := h.meetingService.ListParticipants(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToParticipantListResponse(participants))
}

// LeaveMeeting handles POST /participants/:id/leave
// @Summary      Record a participant leaving
// @Tags         Participants
// @Accept       json
// @Produce      json
// @Param        id       path      int                             true   "Participant ID"
// @Param        request  body      meetingDTO.LeaveMeetingRequest  false  "Leave time, defaults to now"
// @Success      200      {object}  common.SuccessResponse{data=meetingDTO.ParticipantResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse  "Participant not found"
// @Router       /participants/{id}/leave [post]
func (h *Meeting) LeaveMeeting(c echo.Context) error {
	participantID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.LeaveMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	var at time.Time
	if req.LeaveTime != nil {
		at = req.LeaveTime.UTC()
	}

	p, err := h.meetingService.LeaveMeeting(c.Request().Context(), participantID, at)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToParticipantResponse(p))
}

// RecordVoiceActivity handles POST /participants/:id/voice-activities
// @Summary      Record voice activity
// @Description  Logs a span of speech and adds its duration to the participant's speaking time
// @Tags         Participants
// @Accept       json
// @Produce      json
// @Param        id       path      int                                    true  "Participant ID"
// @Param        request  body      meetingDTO.RecordVoiceActivityRequest  true  "Voice activity"
// @Success      201      {object}  common.SuccessResponse{data=meetingDTO.VoiceActivityResponse}
// @Failure      400      {object}  common.ErrorResponse  "Negative duration or end before start"
// @Failure      404      {object}  common.ErrorResponse  "Participant not found"
// @Router       /participants/{id}/voice-activities [post]
func (h *Meeting) RecordVoiceActivity(c echo.Context) error {
	participantID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.RecordVoiceActivityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	activity, err := h.meetingService.RecordVoiceActivity(c.Request().Context(), meetingUsecase.RecordVoiceActivityInput{
		ParticipantID: participantID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Duration:      req.Duration,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToVoiceActivityResponse(activity))
}

// ListVoiceActivities handles GET /participants/:id/voice-activities
// @Summary      List voice activity
// @Tags         Participants
// @Produce      json
// @Param        id   path      int  true  "Participant ID"
// @Success      200  {object}  common.SuccessResponse{data=[]meetingDTO.VoiceActivityResponse}
// @Failure      404  {object}  common.ErrorResponse  "Participant not found"
// @Router       /participants/{id}/voice-activities [get]
func (h *Meeting) ListVoiceActivities(c echo.Context) error {
	participantID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	activities, err := h.meetingService.ListVoiceActivities(c.Request().Context(), participantID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToVoiceActivityListResponse(activities))
}
