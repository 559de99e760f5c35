package handlers

import (
	"net/http"
	"server/auth"
	"server/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type GroupCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type GroupAddMemberRequest struct {
	UserID uint64 `json:"user_id" binding:"required"`
	Role   string `json:"role"`
}

type GroupRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// GroupCreate creates a Group and the creator's admin membership in one go
func GroupCreate(c *gin.Context, user *auth.Claims) {
	postReq := GroupCreateRequest{}
	if err := c.ShouldBindWith(&postReq, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{"Group name is required"})
		return
	}
	group, err := models.GroupCreateWithAdmin(postReq.Name, postReq.Description, user.ID)
	if err != nil {
		serverError(c, "Failed to create group", err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// GroupList returns all groups the caller belongs to, regardless of role.
func GroupList(c *gin.Context, user *auth.Claims) {
	groups, err := models.GroupsForUser(user.ID)
	if err != nil {
		serverError(c, "Failed to fetch groups", err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func GroupGet(c *gin.Context, user *auth.Claims) {
	groupID, ok := uint64Param(c, "id")
	if !ok {
		return
	}
	if !models.IsMember(groupID, user.ID) {
		c.JSON(http.StatusForbidden, Response{"You are not a member of this group"})
		return
	}
	group, found, err := models.GroupByID(groupID)
	if err != nil {
		serverError(c, "Failed to fetch group details", err)
		return
	}
	if !found {
		// Dangling membership row; should not happen with the FK cascade
		c.JSON(http.StatusNotFound, Response{"Group not found"})
		return
	}
	c.JSON(http.StatusOK, group)
}

// GroupUpdate renames a group. Requires the admin role, not creatorship.
func GroupUpdate(c *gin.Context, user *auth.Claims) {
	groupID, ok := uint64Param(c, "id")
	if !ok {
		return
	}
	if !models.IsGroupAdmin(groupID, user.ID) {
		c.JSON(http.StatusForbidden, Response{"You do not have permission to update this group"})
		return
	}
	postReq := GroupCreateRequest{}
	if err := c.ShouldBindWith(&postReq, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{"Group name is required"})
		return
	}
	if err := models.GroupUpdate(groupID, postReq.Name, postReq.Description); err != nil {
		serverError(c, "Failed to update group", err)
		return
	}
	c.JSON(http.StatusOK, Response{"Group updated successfully"})
}

// GroupDelete removes a group and, via the FK cascade, its memberships.
// Only the original creator may delete; the admin role is not enough.
func GroupDelete(c *gin.Context, user *auth.Claims) {
	groupID, ok := uint64Param(c, "id")
	if !ok {
		return
	}
	deleted, err := models.GroupDeleteByCreator(groupID, user.ID)
	if err != nil {
		serverError(c, "Failed to delete group", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusForbidden, Response{"You do not have permission to delete this group"})
		return
	}
	c.JSON(http.StatusOK, Response{"Group deleted successfully"})
}

func GroupAddMember(c *gin.Context, user *auth.Claims) {
	groupID, ok := uint64Param(c, "id")
	if !ok {
		return
	}
	postReq := GroupAddMemberRequest{}
	if err := c.ShouldBindWith(&postReq, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{"User ID is required"})
		return
	}
	if !models.IsGroupAdmin(groupID, user.ID) {
		c.JSON(http.StatusForbidden, Response{"You do not have permission to add members to this group"})
		return
	}
	_, found, err := models.UserByID(postReq.UserID)
	if err != nil {
		serverError(c, "Failed to add member to group", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, Response{"User not found"})
		return
	}
	exists, err := models.GroupMemberExists(groupID, postReq.UserID)
	if err != nil {
		serverError(c, "Failed to add member to group", err)
		return
	}
	if exists {
		c.JSON(http.StatusConflict, Response{"User is already a member of this group"})
		return
	}
	role := postReq.Role
	if role == "" {
		role = models.RoleMember
	}
	if err := models.GroupMemberAdd(groupID, postReq.UserID, role); err != nil {
		serverError(c, "Failed to add member to group", err)
		return
	}
	c.JSON(http.StatusCreated, Response{"Member added successfully"})
}

func GroupMembers(c *gin.Context, user *auth.Claims) {
	groupID, ok := uint64Param(c, "id")
	if !ok {
		return
	}
	if !models.IsMember(groupID, user.ID) {
		c.JSON(http.StatusForbidden, Response{"You are not a member of this group"})
		return
	}
	members, err := models.GroupMembers(groupID)
	if err != nil {
		serverError(c, "Failed to fetch group members", err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GroupRemoveMember deletes a membership row. Members may always remove
// themselves; removing anyone else needs the admin role.
func GroupRemoveMember(c *gin.Context, user *auth.Claims) {
	groupID, ok := uint64Param(c, "id")
	if !ok {
		return
	}
	memberID, ok := uint64Param(c, "userId")
	if !ok {
		return
	}
	isSelfRemoval := memberID == user.ID
	if !isSelfRemoval && !models.IsGroupAdmin(groupID, user.ID) {
		c.JSON(http.StatusForbidden, Response{"You do not have permission to remove members from this group"})
		return
	}
	if err := models.GroupMemberRemove(groupID, memberID); err != nil {
		serverError(c, "Failed to remove member from group", err)
		return
	}
	c.JSON(http.StatusOK, Response{"Member removed successfully"})
}

func GroupUpdateMemberRole(c *gin.Context, user *auth.Claims) {
	groupID, ok := uint64Param(c, "id")
	if !ok {
		return
	}
	memberID, ok := uint64Param(c, "userId")
	if !ok {
		return
	}
	postReq := GroupRoleRequest{}
	if err := c.ShouldBindWith(&postReq, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{"Role is required"})
		return
	}
	if !models.IsGroupAdmin(groupID, user.ID) {
		c.JSON(http.StatusForbidden, Response{"You do not have permission to update member roles in this group"})
		return
	}
	if err := models.GroupMemberSetRole(groupID, memberID, postReq.Role); err != nil {
		serverError(c, "Failed to update member role", err)
		return
	}
	c.JSON(http.StatusOK, Response{"Member role updated successfully"})
}
