// Package testdb opens throwaway in-memory databases for tests.
package testdb

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/user/recipevault/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var seq atomic.Int64

// Open returns a migrated in-memory database closed at test cleanup
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", seq.Add(1))
	db, err := repository.Open(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		repository.Close(db)
	})
	return db
}
