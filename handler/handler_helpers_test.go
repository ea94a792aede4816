package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/database/repository"
	"github.com/DCSlucifer/quickblog-backend/pkg/mailer"
	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupConnection(t *testing.T) *database.Connection {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(database.GetSchemaModels()...); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	return database.NewConnectionFromGorm(db)
}

// silentFanout uses an unconfigured sender, so publish triggers are no-ops
// in tests.
func silentFanout(conn *database.Connection) *mailer.Fanout {
	return mailer.MakeFanout(
		mailer.NewClient("", "", ""),
		repository.Subscribers{DB: conn},
		"QuickBlog",
		"https://quickblog.example.com",
	)
}

func testValidator() *portal.Validator {
	return portal.GetDefaultValidator()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
