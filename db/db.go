package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// Init connects to MySQL when a DSN is given, otherwise to the SQLite file.
func Init(mysqlDSN, sqliteFile string) {
	var dialector gorm.Dialector
	if mysqlDSN != "" {
		dialector = mysql.Open(mysqlDSN)
	} else {
		// SQLite does not enforce foreign keys unless told to; group
		// deletion relies on the membership cascade
		dialector = sqlite.Open(sqliteFile + "?_foreign_keys=on")
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
