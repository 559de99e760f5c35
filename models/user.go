package models

import (
	"errors"
	"server/db"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"-"`
	Username  string `gorm:"type:varchar(100);index:uniq_username,unique" json:"username"`
	Email     string `gorm:"type:varchar(150)" json:"email"`
	Password  string `gorm:"type:varchar(128)" json:"-"` // bcrypt hash, never serialized
	IsAdmin   bool   `json:"is_admin"`
}

const bcryptCost = 10

// UserInfo is the public projection used by the open user listing.
type UserInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// UserSearchResult carries the identity columns exposed by the search route.
type UserSearchResult struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserCreate stores a new user with a hashed credential.
// Returns a ConflictError when the username is already taken.
func UserCreate(username, email, plainTextPassword string) (u User, err error) {
	var count int64
	if err = db.Instance.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return
	}
	if count > 0 {
		return u, ConflictError("Username already exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcryptCost)
	if err != nil {
		return
	}
	u.Username = username
	u.Email = email
	u.Password = string(hash)
	return u, db.Instance.Create(&u).Error
}

// UserLogin verifies the credentials. Unknown usernames and wrong passwords
// are indistinguishable to the caller.
func UserLogin(username, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plainTextPassword)) != nil {
		return User{}, false
	}
	return u, true
}

func UserByID(id uint64) (u User, found bool, err error) {
	result := db.Instance.First(&u, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return User{}, false, nil
	}
	return u, result.Error == nil, result.Error
}

func UserCount() (count int64, err error) {
	err = db.Instance.Model(&User{}).Count(&count).Error
	return
}

// UserPage returns one page of public user projections ordered by username.
func UserPage(page, limit int) ([]UserInfo, error) {
	rows, err := db.Instance.
		Table("users").
		Select("id, username").
		Order("username").
		Limit(limit).
		Offset((page - 1) * limit).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []UserInfo{}
	for rows.Next() {
		userInfo := UserInfo{}
		if err = rows.Scan(&userInfo.ID, &userInfo.Username); err != nil {
			return nil, err
		}
		result = append(result, userInfo)
	}
	return result, nil
}

// UserSearch returns up to 20 users whose username or email contains the
// query substring. The caller is filtered out afterwards, not here.
func UserSearch(query string) ([]UserSearchResult, error) {
	like := "%" + query + "%"
	rows, err := db.Instance.
		Table("users").
		Select("id, username, email").
		Where("username LIKE ? OR email LIKE ?", like, like).
		Limit(20).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []UserSearchResult{}
	for rows.Next() {
		match := UserSearchResult{}
		if err = rows.Scan(&match.ID, &match.Username, &match.Email); err != nil {
			return nil, err
		}
		result = append(result, match)
	}
	return result, nil
}
