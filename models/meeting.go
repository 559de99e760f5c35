package models

import (
	"errors"
	"server/db"
	"time"

	"gorm.io/gorm"
)

type Meeting struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	CreatedAt       int64     `json:"created_at"`
	UpdatedAt       int64     `json:"-"`
	Title           string    `gorm:"type:varchar(300)" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	MeetingTime     time.Time `json:"meeting_time"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedByID     uint64    `json:"created_by"`
	CreatedBy       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	GroupID         *uint64   `json:"group_id"`
	Group           Group     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	// Display/join key, not a security token. Collisions are possible
	// and accepted as negligible
	RoomCode string `gorm:"type:varchar(16)" json:"room_code"`
}

func MeetingCreate(meeting *Meeting) error {
	return db.Instance.Create(meeting).Error
}

func MeetingByID(id uint64) (meeting Meeting, found bool, err error) {
	result := db.Instance.First(&meeting, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Meeting{}, false, nil
	}
	return meeting, result.Error == nil, result.Error
}

// MeetingsForUser returns meetings the user created plus meetings of any
// group they belong to, deduplicated, ordered by scheduled time.
func MeetingsForUser(userID uint64) ([]Meeting, error) {
	result := []Meeting{}
	err := db.Instance.
		Table("meetings").
		Select("meetings.*").
		Joins("left join group_members on group_members.group_id = meetings.group_id").
		Where("meetings.created_by_id = ? OR (group_members.user_id = ? AND meetings.group_id IS NOT NULL)", userID, userID).
		Group("meetings.id").
		Order("meetings.meeting_time").
		Find(&result).Error
	return result, err
}

func MeetingsForGroup(groupID uint64) ([]Meeting, error) {
	result := []Meeting{}
	err := db.Instance.
		Where("group_id = ?", groupID).
		Order("meeting_time").
		Find(&result).Error
	return result, err
}

// MeetingVisibleTo loads the meeting only when the user created it or is a
// member of its group. "No access" and "does not exist" look the same.
func MeetingVisibleTo(id, userID uint64) (meeting Meeting, found bool, err error) {
	result := db.Instance.
		Table("meetings").
		Select("meetings.*").
		Joins("left join group_members on group_members.group_id = meetings.group_id").
		Where("meetings.id = ? AND (meetings.created_by_id = ? OR (group_members.user_id = ? AND meetings.group_id IS NOT NULL))",
			id, userID, userID).
		Limit(1).
		Find(&meeting)
	if result.Error != nil {
		return Meeting{}, false, result.Error
	}
	return meeting, result.RowsAffected > 0, nil
}

func MeetingUpdate(id uint64, title, description string, meetingTime time.Time, durationMinutes int) error {
	return db.Instance.Model(&Meeting{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":            title,
			"description":      description,
			"meeting_time":     meetingTime,
			"duration_minutes": durationMinutes,
		}).Error
}

func MeetingDelete(id uint64) error {
	return db.Instance.Delete(&Meeting{}, id).Error
}
