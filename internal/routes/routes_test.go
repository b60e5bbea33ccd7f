package routes

import (
	"context"
	"database/sql"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/VelvetStudioPL/salon-scheduler/internal/config"
	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
	"github.com/VelvetStudioPL/salon-scheduler/internal/uploads"
)

// stubAdapter satisfies db.QueryAdapter for wiring tests that never run a
// query.
type stubAdapter struct{}

func (stubAdapter) Exec(context.Context, string, ...any) (sql.Result, error) { return nil, nil }
func (stubAdapter) Query(context.Context, string, ...any) (*sql.Rows, error) { return nil, nil }
func (stubAdapter) QueryRow(context.Context, string, ...any) *sql.Row        { return nil }
func (stubAdapter) InsertIgnore(string, []string, []string) string           { return "" }
func (stubAdapter) Dialect() string                                          { return "mysql" }
func (stubAdapter) DB() *sql.DB                                              { return nil }

var _ db.QueryAdapter = stubAdapter{}

func TestRegisterRoutesWiresAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, err := uploads.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r, stubAdapter{}, &config.Config{JWTSecret: "test-secret"}, store)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /api/test",
		"POST /api/register",
		"POST /api/login",
		"GET /api/available-dates",
		"GET /api/available-slots/:date",
		"POST /api/book-appointment",
		"GET /api/user/appointments",
		"GET /api/admin/users",
		"DELETE /api/admin/users/:id",
		"POST /api/admin/slots",
		"DELETE /api/admin/slots/:date/:time",
		"GET /api/admin/appointments",
		"PATCH /api/admin/appointments/:id/confirm",
		"POST /api/admin/appointments/manual",
		"GET /api/admin/audit-logs",
		"GET /api/services",
		"GET /api/articles/:slug",
		"POST /api/reviews",
		"PUT /api/admin/metamorphoses/:id",
	} {
		if !registered[want] {
			t.Errorf("route %s not registered", want)
		}
	}
}
