// Package dbtest opens throwaway SQLite-backed clients with the full schema
// applied so store-backed tests exercise real unique and foreign-key constraints.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/angelmondragon/storefront-api/pkg/config"
	"github.com/angelmondragon/storefront-api/pkg/db"
)

var seq atomic.Int64

// Open returns a client over a private in-memory database. A single pooled
// connection serialises access so concurrent tests never see SQLITE_LOCKED.
func Open(t testing.TB) *db.Client {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=1", name, seq.Add(1))

	client, err := db.New(context.Background(), config.DBConfig{
		DSN:          dsn,
		Driver:       db.DriverSQLite,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	if err := client.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return client
}
