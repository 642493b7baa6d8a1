package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-wallet/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps an in-memory SQLite connection migrated to the application schema.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory test database, migrating all application
// models on first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDb := &Db{
		DbConn: dbConn,
		models: []any{
			&model.AccountModel{},
			&model.CategoryModel{},
			&model.TransactionModel{},
		},
	}

	if err := dbConn.AutoMigrate(newDb.models...); err != nil {
		panic("failed to migrate test database. err: " + err.Error())
	}

	return newDb
}

// ClearDB removes all rows from every application table.
func (d *Db) ClearDB() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to clear table for model %T: %w", m, err)
		}
	}
	return nil
}
