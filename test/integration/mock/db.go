package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Table pairs a table name with the GORM model stored in it.
type Table struct {
	Name  string
	Model any
}

type Db struct {
	DbConn *gorm.DB
	tables []Table
}

// NewDb configures a shared in-memory SQLite database with the given tables,
// migrated in order.
func NewDb(tables ...Table) *Db {
	if db == nil {
		once.Do(
			func() {
				db = open(tables)
			},
		)
	}

	return db
}

func open(tables []Table) *Db {
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

	newDbMock := &Db{
		DbConn: dbConn,
		tables: tables,
	}

	for _, table := range tables {
		if err := dbConn.AutoMigrate(table.Model); err != nil {
			panic(fmt.Sprintf("failed to migrate %s. err: %s", table.Name, err.Error()))
		}
	}

	if err := newDbMock.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to clear database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB deletes every row and resets the autoincrement counters, children first.
func (d *Db) ClearDB() error {
	for i := len(d.tables) - 1; i >= 0; i-- {
		table := d.tables[i]

		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(table.Model).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table.Name, err)
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table.Name).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}

	return nil
}

func (d *Db) GetModel(table string) (any, bool) {
	for _, t := range d.tables {
		if t.Name == table {
			return t.Model, true
		}
	}
	return nil, false
}
