package testutils

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskhub/taskhub/database"
)

// SetupTestDB opens an in-memory sqlite database with the full schema
// migrated. The pool is pinned to a single connection so every query
// sees the same in-memory database.
func SetupTestDB() (*database.Database, func()) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigrations(db); err != nil {
		panic(err)
	}

	testDB := &database.Database{
		DB: db,
	}

	close := func() {
		sqlDB.Close()
	}

	return testDB, close
}
