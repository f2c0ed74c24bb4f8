package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/engagement-tracker/errors"
	meetingDTO "github.com/johnquangdev/engagement-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/engagement-tracker/internal/adapter/presenter"
	"github.com/johnquangdev/engagement-tracker/internal/infrastructure/http/middleware"
	meetingUsecase "github.com/johnquangdev/engagement-tracker/internal/usecase/meeting"
)

// actingUserID returns the explicit user_id or the authenticated caller
func actingUserID(c echo.Context, explicit *int64) (int64, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if id, ok := middleware.GetUserID(c); ok {
		return id, nil
	}
	return 0, errors.ErrInvalidArgument("user_id is required")
}

// AddChatMessage handles POST /meetings/:id/chat-messages
// @Summary      Post a chat message
// @Tags         Activities
// @Accept       json
// @Produce      json
// @Param        id       path      int                               true  "Meeting ID"
// @Param        request  body      meetingDTO.AddChatMessageRequest  true  "Message; user_id defaults to the caller"
// @Success      201      {object}  common.SuccessResponse{data=meetingDTO.ChatMessageResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse  "Meeting or user not found"
// @Router       /meetings/{id}/chat-messages [post]
func (h *Meeting) AddChatMessage(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.AddChatMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	userID, err := actingUserID(c, req.UserID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	msg, err := h.meetingService.AddChatMessage(c.Request().Context(), meetingUsecase.AddChatMessageInput{
		MeetingID: meetingID,
		UserID:    userID,
		Content:   req.Content,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToChatMessageResponse(msg))
}

// ListChatMessages handles GET /meetings/:id/chat-messages
// @Summary      List chat messages
// @Tags         Activities
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse{data=[]meetingDTO.ChatMessageResponse}
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Router       /meetings/{id}/chat-messages [get]
func (h *Meeting) ListChatMessages(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	messages, err := h.meetingService.ListChatMessages(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToChatMessageListResponse(messages))
}

// AddDocumentActivity handles POST /meetings/:id/document-activities
// @Summary      Record a document activity
// @Tags         Activities
// @Accept       json
// @Produce      json
// @Param        id       path      int                                    true  "Meeting ID"
// @Param        request  body      meetingDTO.AddDocumentActivityRequest  true  "Activity; user_id defaults to the caller"
// @Success      201      {object}  common.SuccessResponse{data=meetingDTO.DocumentActivityResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse  "Meeting or user not found"
// @Router       /meetings/{id}/document-activities [post]
func (h *Meeting) AddDocumentActivity(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.AddDocumentActivityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	userID, err := actingUserID(c, req.UserID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	activity, err := h.meetingService.AddDocumentActivity(c.Request().Context(), meetingUsecase.AddWorkActivityInput{
		MeetingID:    meetingID,
		UserID:       userID,
		EntityID:     req.DocumentID,
		ActivityType: req.ActivityType,
		Timestamp:    req.Timestamp,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToDocumentActivityResponse(activity))
}

// ListDocumentActivities handles GET /meetings/:id/document-activities
// @Summary      List document activities
// @Tags         Activities
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse{data=[]meetingDTO.DocumentActivityResponse}
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Router       /meetings/{id}/document-activities [get]
func (h *Meeting) ListDocumentActivities(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	activities, err := h.meetingService.ListDocumentActivities(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToDocumentActivityListResponse(activities))
}

// AddTaskActivity handles POST /meetings/:id/task-activities
// @Summary      Record a task activity
// @Tags         Activities
// @Accept       json
// @Produce      json
// @Param        id       path      int                                true  "Meeting ID"
// @Param        request  body      meetingDTO.AddTaskActivityRequest  true  "Activity; user_id defaults to the caller"
// @Success      201      {object}  common.SuccessResponse{data=meetingDTO.TaskActivityResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse  "Meeting or user not found"
// @Router       /meetings/{id}/task-activities [post]
func (h *Meeting) AddTaskActivity(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.AddTaskActivityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	userID, err := actingUserID(c, req.UserID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	activity, err := h.meetingService.AddTaskActivity(c.Request().Context(), meetingUsecase.AddWorkActivityInput{
		MeetingID:    meetingID,
		UserID:       userID,
		EntityID:     req.TaskID,
		ActivityType: req.ActivityType,
		Timestamp:    req.Timestamp,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToTaskActivityResponse(activity))
}

// ListTaskActivities handles GET /meetings/:id/task-activities
// @Summary      List task activities
// @Tags         Activities
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse{data=[]meetingDTO.TaskActivityResponse}
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Router       /meetings/{id}/task-activities [get]
func (h *Meeting) ListTaskActivities(c echo.Context) error {
	meetingID, err := pathID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	activities, err := h.meetingService.ListTaskActivities(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTaskActivityListResponse(activities))
}
