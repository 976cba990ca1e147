package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createScholarshipTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE scholarships (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		provider TEXT NOT NULL,
		amount TEXT,
		deadline TEXT,
		eligibility TEXT,
		description TEXT,
		url TEXT,
		created_at DATETIME
	);`)
}

func createProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		user_id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		date_of_birth TEXT NOT NULL DEFAULT '',
		gender TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		education_level TEXT NOT NULL DEFAULT '',
		course TEXT NOT NULL DEFAULT '',
		board TEXT NOT NULL DEFAULT '',
		year_of_study TEXT NOT NULL DEFAULT '',
		marks TEXT NOT NULL DEFAULT '',
		family_income TEXT NOT NULL DEFAULT '',
		parents_occupation TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		district TEXT NOT NULL DEFAULT '',
		pincode TEXT NOT NULL DEFAULT '',
		is_disabled BOOLEAN NOT NULL DEFAULT FALSE,
		is_orphan BOOLEAN NOT NULL DEFAULT FALSE,
		has_single_parent BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createBookmarkTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE bookmarks (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		scholarship_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (user_id, scholarship_id)
	);`)
}

func createApplicationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE applications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		scholarship_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'applied',
		created_at DATETIME,
		UNIQUE (user_id, scholarship_id)
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
