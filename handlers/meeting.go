package handlers

import (
	"net/http"
	"server/auth"
	"server/models"
	"server/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	defaultMeetingDuration = 60
	roomCodeLength         = 8
)

type MeetingCreateRequest struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	MeetingTime     time.Time `json:"meeting_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	GroupID         *uint64   `json:"group_id"`
}

type MeetingUpdateRequest struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	MeetingTime     time.Time `json:"meeting_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
}

// MeetingCreate schedules a meeting, optionally scoped to a group the
// caller already belongs to.
func MeetingCreate(c *gin.Context, user *auth.Claims) {
	postReq := MeetingCreateRequest{}
	if err := c.ShouldBindWith(&postReq, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{"Title and meeting time are required"})
		return
	}
	if postReq.GroupID != nil && !models.IsMember(*postReq.GroupID, user.ID) {
		c.JSON(http.StatusForbidden, Response{"You are not a member of this group"})
		return
	}
	duration := postReq.DurationMinutes
	if duration == 0 {
		duration = defaultMeetingDuration
	}
	meeting := models.Meeting{
		Title:           postReq.Title,
		Description:     postReq.Description,
		MeetingTime:     postReq.MeetingTime,
		DurationMinutes: duration,
		CreatedByID:     user.ID,
		GroupID:         postReq.GroupID,
		RoomCode:        utils.RandomHexCode(roomCodeLength),
	}
	if err := models.MeetingCreate(&meeting); err != nil {
		serverError(c, "Failed to create meeting", err)
		return
	}
	c.JSON(http.StatusCreated, meeting)
}

// MeetingList returns meetings the caller created plus meetings of groups
// they belong to, ordered by scheduled time.
func MeetingList(c *gin.Context, user *auth.Claims) {
	meetings, err := models.MeetingsForUser(user.ID)
	if err != nil {
		serverError(c, "Failed to fetch meetings", err)
		return
	}
	c.JSON(http.StatusOK, meetings)
}

func MeetingGroupList(c *gin.Context, user *auth.Claims) {
	groupID, ok := uint64Param(c, "id")
	if !ok {
		return
	}
	if !models.IsMember(groupID, user.ID) {
		c.JSON(http.StatusForbidden, Response{"You are not a member of this group"})
		return
	}
	meetings, err := models.MeetingsForGroup(groupID)
	if err != nil {
		serverError(c, "Failed to fetch group meetings", err)
		return
	}
	c.JSON(http.StatusOK, meetings)
}

// MeetingGet hides "exists but not yours" behind the same 404 as
// "does not exist".
func MeetingGet(c *gin.Context, user *auth.Claims) {
	meetingID, ok := uint64Param(c, "id")
	if !ok {
		return
	}
	meeting, found, err := models.MeetingVisibleTo(meetingID, user.ID)
	if err != nil {
		serverError(c, "Failed to fetch meeting details", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, Response{"Meeting not found or you do not have access"})
		return
	}
	c.JSON(http.StatusOK, meeting)
}

// MeetingUpdate edits a meeting's fields. Only the creator may edit, and
// the group association cannot be changed.
func MeetingUpdate(c *gin.Context, user *auth.Claims) {
	meetingID, ok := uint64Param(c, "id")
	if !ok {
		return
	}
	meeting, found, err := models.MeetingByID(meetingID)
	if err != nil {
		serverError(c, "Failed to update meeting", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, Response{"Meeting not found"})
		return
	}
	if meeting.CreatedByID != user.ID {
		c.JSON(http.StatusForbidden, Response{"You do not have permission to update this meeting"})
		return
	}
	postReq := MeetingUpdateRequest{}
	if err := c.ShouldBindWith(&postReq, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{"Title and meeting time are required"})
		return
	}
	duration := postReq.DurationMinutes
	if duration == 0 {
		duration = defaultMeetingDuration
	}
	if err := models.MeetingUpdate(meetingID, postReq.Title, postReq.Description, postReq.MeetingTime, duration); err != nil {
		serverError(c, "Failed to update meeting", err)
		return
	}
	c.JSON(http.StatusOK, Response{"Meeting updated successfully"})
}

func MeetingDelete(c *gin.Context, user *auth.Claims) {
	meetingID, ok := uint64Param(c, "id")
	if !ok {
		return
	}
	meeting, found, err := models.MeetingByID(meetingID)
	if err != nil {
		serverError(c, "Failed to delete meeting", err)
		return
	}
	if !found || meeting.CreatedByID != user.ID {
		c.JSON(http.StatusForbidden, Response{"You do not have permission to delete this meeting"})
		return
	}
	if err := models.MeetingDelete(meetingID); err != nil {
		serverError(c, "Failed to delete meeting", err)
		return
	}
	c.JSON(http.StatusOK, Response{"Meeting deleted successfully"})
}
