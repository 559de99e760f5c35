package models

import (
	"server/db"
)

// Membership roles. Role grants member management and group edits;
// group deletion is gated on creatorship instead.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type GroupMember struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index"`
	GroupID   uint64 `gorm:"index:uniq_g_u,priority:1,unique;index:idx_u_g,priority:2;"`
	Group     Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserID    uint64 `gorm:"index:uniq_g_u,priority:2,unique;index:idx_u_g,priority:1;"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Role      string `gorm:"type:varchar(20)"`
}

// GroupMemberInfo joins a membership row with the member's identity.
type GroupMemberInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinedAt int64  `json:"joined_at"`
}

// MemberRole returns the user's role in the group, if they have a
// membership row at all.
func MemberRole(groupID, userID uint64) (role string, found bool) {
	member := GroupMember{}
	result := db.Instance.First(&member, "group_id = ? AND user_id = ?", groupID, userID)
	if result.Error != nil {
		return "", false
	}
	return member.Role, true
}

func IsMember(groupID, userID uint64) bool {
	_, found := MemberRole(groupID, userID)
	return found
}

func IsGroupAdmin(groupID, userID uint64) bool {
	role, found := MemberRole(groupID, userID)
	return found && role == RoleAdmin
}

func GroupMemberExists(groupID, userID uint64) (bool, error) {
	var count int64
	err := db.Instance.Model(&GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func GroupMemberAdd(groupID, userID uint64, role string) error {
	member := GroupMember{
		GroupID: groupID,
		UserID:  userID,
		Role:    role,
	}
	return db.Instance.Create(&member).Error
}

// GroupMemberRemove deletes the membership row. Removing an absent member
// is a no-op, not an error.
func GroupMemberRemove(groupID, userID uint64) error {
	return db.Instance.Delete(&GroupMember{}, "group_id = ? AND user_id = ?", groupID, userID).Error
}

// GroupMemberSetRole updates the target's role. An absent target silently
// affects zero rows.
func GroupMemberSetRole(groupID, userID uint64, role string) error {
	return db.Instance.Model(&GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Update("role", role).Error
}

// GroupMembers lists all members with their identity and join timestamps.
func GroupMembers(groupID uint64) ([]GroupMemberInfo, error) {
	rows, err := db.Instance.
		Table("group_members").
		Joins("join users on users.id = group_members.user_id").
		Select("users.id, users.username, users.email, group_members.role, group_members.created_at").
		Where("group_members.group_id = ?", groupID).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []GroupMemberInfo{}
	for rows.Next() {
		info := GroupMemberInfo{}
		if err = rows.Scan(&info.ID, &info.Username, &info.Email, &info.Role, &info.JoinedAt); err != nil {
			return nil, err
		}
		result = append(result, info)
	}
	return result, nil
}
