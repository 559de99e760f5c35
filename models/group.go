package models

import (
	"errors"
	"server/db"

	"gorm.io/gorm"
)

type Group struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"-"`
	Name        string `gorm:"type:varchar(300)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	CreatedByID uint64 `json:"created_by"`
	CreatedBy   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// GroupCreateWithAdmin creates the Group and the creator's admin membership
// in one transaction so a failure cannot leave a group with no admin.
func GroupCreateWithAdmin(name, description string, userID uint64) (group Group, err error) {
	group = Group{
		Name:        name,
		Description: description,
		CreatedByID: userID,
	}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		member := GroupMember{
			GroupID: group.ID,
			UserID:  userID,
			Role:    RoleAdmin,
		}
		return tx.Create(&member).Error
	})
	return
}

// GroupsForUser returns all groups the user has a membership row in,
// regardless of role.
func GroupsForUser(userID uint64) ([]Group, error) {
	result := []Group{}
	err := db.Instance.
		Joins("join group_members on group_members.group_id = `groups`.id").
		Where("group_members.user_id = ?", userID).
		Find(&result).Error
	return result, err
}

func GroupByID(id uint64) (group Group, found bool, err error) {
	result := db.Instance.First(&group, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Group{}, false, nil
	}
	return group, result.Error == nil, result.Error
}

func GroupUpdate(id uint64, name, description string) error {
	return db.Instance.Model(&Group{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "description": description}).Error
}

// GroupDeleteByCreator deletes the group only when userID is its original
// creator; membership rows go away via the foreign key cascade.
func GroupDeleteByCreator(id, userID uint64) (deleted bool, err error) {
	var group Group
	result := db.Instance.First(&group, "id = ? AND created_by_id = ?", id, userID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if result.Error != nil {
		return false, result.Error
	}
	return true, db.Instance.Delete(&group).Error
}
