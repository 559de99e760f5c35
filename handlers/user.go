package handlers

import (
	"net/http"
	"server/auth"
	"server/db"
	"server/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserRegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

type UserLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PublicUser is the credential-free projection returned by login.
type PublicUser struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

type UserLoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type UserListResponse struct {
	Users      []models.UserInfo `json:"users"`
	Pagination Pagination        `json:"pagination"`
}

const (
	defaultUserPageLimit = 100
	searchMinLength      = 3
)

// UserRegister creates an account. It does not log the user in.
func UserRegister(c *gin.Context) {
	postReq := UserRegisterRequest{}
	if err := c.ShouldBindWith(&postReq, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{"All fields required"})
		return
	}
	_, err := models.UserCreate(postReq.Username, postReq.Email, postReq.Password)
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{"User registered successfully"})
}

// UserLogin verifies credentials and issues a bearer token. Unknown
// usernames and wrong passwords produce the same response.
func UserLogin(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		postReq := UserLoginRequest{}
		if err := c.ShouldBindWith(&postReq, binding.JSON); err != nil {
			c.JSON(http.StatusBadRequest, Response{"All fields required"})
			return
		}
		user, success := models.UserLogin(postReq.Username, postReq.Password)
		if !success {
			c.JSON(http.StatusUnauthorized, Response{"Invalid credentials"})
			return
		}
		token, err := tokens.Sign(&user)
		if err != nil {
			serverError(c, "Failed to issue token", err)
			return
		}
		c.JSON(http.StatusOK, UserLoginResponse{
			Token: token,
			User: PublicUser{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				IsAdmin:  user.IsAdmin,
			},
		})
	}
}

// UserList returns one page of public user projections, open to any
// authenticated caller.
func UserList(c *gin.Context, user *auth.Claims) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", defaultUserPageLimit)
	total, err := models.UserCount()
	if err != nil {
		serverError(c, "Failed to fetch users", err)
		return
	}
	users, err := models.UserPage(page, limit)
	if err != nil {
		serverError(c, "Failed to fetch users", err)
		return
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, UserListResponse{
		Users: users,
		Pagination: Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
	})
}

// UserSearch finds users by username or email substring. The caller is
// dropped from the results after the query limit is applied.
func UserSearch(c *gin.Context, user *auth.Claims) {
	query := c.Query("query")
	if len(query) < searchMinLength {
		c.JSON(http.StatusBadRequest, Response{"Search query must be at least 3 characters"})
		return
	}
	matches, err := models.UserSearch(query)
	if err != nil {
		serverError(c, "Failed to search users", err)
		return
	}
	filtered := []models.UserSearchResult{}
	for _, match := range matches {
		if match.ID == user.ID {
			continue
		}
		filtered = append(filtered, match)
	}
	c.JSON(http.StatusOK, filtered)
}

// UserListAll is the legacy admin-only listing with full columns.
func UserListAll(c *gin.Context, user *auth.Claims) {
	rows, err := db.Instance.Table("users").
		Select("id, username, email, is_admin").Rows()
	if err != nil {
		serverError(c, "Failed to fetch users", err)
		return
	}
	defer rows.Close()
	result := []PublicUser{}
	for rows.Next() {
		entry := PublicUser{}
		if err = rows.Scan(&entry.ID, &entry.Username, &entry.Email, &entry.IsAdmin); err != nil {
			serverError(c, "Failed to fetch users", err)
			return
		}
		result = append(result, entry)
	}
	c.JSON(http.StatusOK, result)
}
