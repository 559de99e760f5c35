package models

import (
	"path/filepath"
	"server/db"
	"testing"
)

func testInit(t *testing.T) {
	t.Helper()
	db.Init("", filepath.Join(t.TempDir(), "test.db"))
	Init()
}

// mustUser inserts a user row directly, skipping the bcrypt work that
// UserCreate does.
func mustUser(t *testing.T, username string) User {
	t.Helper()
	u := User{Username: username, Email: username + "@example.com", Password: "x"}
	if err := db.Instance.Create(&u).Error; err != nil {
		t.Fatalf("creating user %q: %v", username, err)
	}
	return u
}
