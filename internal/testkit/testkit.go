// Package testkit builds throwaway SQLite databases and fixtures for package tests.
package testkit

import (
	"Tuiter/models"
	"Tuiter/pkg/database"
	"Tuiter/pkg/snowflake"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB opens a migrated in-memory database private to t.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, snowflake.GenID())
	db, err := database.OpenSQLite(dsn, false)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func User(t testing.TB, db *gorm.DB, username string) *models.User {
	t.Helper()

	u := &models.User{
		ID:       snowflake.GenID(),
		Username: username,
		Email:    username + "@tuiter.test",
	}
	require.NoError(t, db.WithContext(context.Background()).Create(u).Error)
	return u
}

func Tuit(t testing.TB, db *gorm.DB, author *models.User, text string) *models.Tuit {
	t.Helper()

	tuit := &models.Tuit{
		ID:       snowflake.GenID(),
		Tuit:     text,
		PostedBy: author.ID,
		PostedOn: time.Now(),
	}
	require.NoError(t, db.WithContext(context.Background()).Create(tuit).Error)
	return tuit
}

// FailOn makes every statement of kind ("create", "query", "update", "delete") against table fail with err.
func FailOn(t testing.TB, db *gorm.DB, kind, table string, err error) {
	t.Helper()

	name := fmt.Sprintf("testkit:fail_%s_%s", kind, table)
	fail := func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(err)
		}
	}

	var cb interface {
		Register(name string, fn func(*gorm.DB)) error
	}
	switch kind {
	case "create":
		cb = db.Callback().Create().Before("gorm:create")
	case "query":
		cb = db.Callback().Query().Before("gorm:query")
	case "update":
		cb = db.Callback().Update().Before("gorm:update")
	case "delete":
		cb = db.Callback().Delete().Before("gorm:delete")
	default:
		t.Fatalf("unknown callback kind %q", kind)
	}
	require.NoError(t, cb.Register(name, fail))
}
