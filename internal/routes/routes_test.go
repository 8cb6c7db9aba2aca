package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-pos/internal/config"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/store"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
	now    time.Time
	token  string
}

func newServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		t:      t,
		router: gin.New(),
		now:    time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}

	app := RegisterRoutes(ts.router, Deps{
		Config: cfg,
		Store:  store.NewMemoryStore(),
		Now:    func() time.Time { return ts.now },
	})
	t.Cleanup(app.Audit.Close)

	return ts
}

func testConfig() *config.Config {
	return &config.Config{
		Timezone:             "UTC",
		JWTSecret:            "test-secret",
		DuePollInterval:      5 * time.Second,
		DueCatchUpWindow:     24 * time.Hour,
		BookingPastTolerance: time.Minute,
		DefaultSnooze:        10 * time.Minute,
	}
}

func (ts *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	ts.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			ts.t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if ts.token != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

type errorBody struct {
	Code string `json:"error_code"`
}

type listBody[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func TestHealth(t *testing.T) {
	ts := newServer(t, testConfig())

	if w := ts.do(http.MethodGet, "/health", nil); w.Code != http.StatusOK {
		t.Errorf("GET /health = %d", w.Code)
	}
}

func TestStaffAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("nails"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.StaffPasswordHash = string(hash)
	ts := newServer(t, cfg)

	if w := ts.do(http.MethodGet, "/api/bills", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token = %d, want 401", w.Code)
	}

	if w := ts.do(http.MethodPost, "/api/auth/login", map[string]string{"password": "wrong"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password = %d, want 401", w.Code)
	}

	w := ts.do(http.MethodPost, "/api/auth/login", map[string]string{"password": "nails"})
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d: %s", w.Code, w.Body.String())
	}
	ts.token = decode[struct {
		Token string `json:"token"`
	}](t, w).Token

	if w := ts.do(http.MethodGet, "/api/bills", nil); w.Code != http.StatusOK {
		t.Errorf("with token = %d, want 200", w.Code)
	}

	ts.now = ts.now.Add(25 * time.Hour)
	if w := ts.do(http.MethodGet, "/api/bills", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token = %d, want 401", w.Code)
	}
}

func TestLoginWithoutPassword(t *testing.T) {
	ts := newServer(t, testConfig())

	w := ts.do(http.MethodPost, "/api/auth/login", map[string]string{"password": "x"})
	if got := decode[errorBody](t, w); w.Code != http.StatusBadRequest || got.Code != "auth_disabled" {
		t.Errorf("login = %d %q", w.Code, got.Code)
	}
}

func TestBillFlow(t *testing.T) {
	ts := newServer(t, testConfig())

	w := ts.do(http.MethodPost, "/api/services", map[string]any{"name": "Gel", "price": 100000, "allowQuantity": true})
	if w.Code != http.StatusCreated {
		t.Fatalf("create service = %d: %s", w.Code, w.Body.String())
	}
	svc := decode[models.PredefinedService](t, w)

	w = ts.do(http.MethodPost, "/api/bills", map[string]any{
		"customerName":  "Anna",
		"items":         []map[string]any{{"serviceId": svc.ID, "quantity": 2}},
		"discountValue": 10,
		"discountType":  "percent",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create bill = %d: %s", w.Code, w.Body.String())
	}
	if created := decode[models.Bill](t, w); created.Total != 180000 {
		t.Errorf("total = %d, want 180000", created.Total)
	}

	w = ts.do(http.MethodPost, "/api/bills", map[string]any{"customerName": "Anna"})
	if got := decode[errorBody](t, w); w.Code != http.StatusBadRequest || got.Code != "items_required" {
		t.Errorf("empty bill = %d %q", w.Code, got.Code)
	}

	list := decode[listBody[models.Bill]](t, ts.do(http.MethodGet, "/api/bills", nil))
	if list.Total != 1 {
		t.Errorf("bills total = %d, want 1", list.Total)
	}

	w = ts.do(http.MethodDelete, "/api/bills/missing", nil)
	if got := decode[errorBody](t, w); w.Code != http.StatusNotFound || got.Code != "not_found" {
		t.Errorf("delete missing = %d %q", w.Code, got.Code)
	}
}

func TestDueBookingConfirm(t *testing.T) {
	ts := newServer(t, testConfig())

	w := ts.do(http.MethodPost, "/api/bookings", map[string]any{
		"customerName": "Binh",
		"date":         ts.now.Add(-time.Hour),
		"items":        []map[string]any{{"name": "Polish", "unitPrice": 50000, "quantity": 1}},
	})
	if got := decode[errorBody](t, w); w.Code != http.StatusBadRequest || got.Code != "booking_in_past" {
		t.Fatalf("past booking = %d %q", w.Code, got.Code)
	}

	w = ts.do(http.MethodPost, "/api/bookings", map[string]any{
		"customerName": "Binh",
		"date":         ts.now.Add(time.Hour),
		"items":        []map[string]any{{"name": "Polish", "unitPrice": 50000, "quantity": 1}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking = %d: %s", w.Code, w.Body.String())
	}
	booked := decode[models.Booking](t, w)

	w = ts.do(http.MethodPost, "/api/due/confirm", nil)
	if got := decode[errorBody](t, w); w.Code != http.StatusNotFound || got.Code != "due_queue_empty" {
		t.Fatalf("confirm on empty queue = %d %q", w.Code, got.Code)
	}

	ts.now = ts.now.Add(2 * time.Hour)

	due := decode[struct {
		Head    *models.Booking `json:"head"`
		Pending int             `json:"pending"`
	}](t, ts.do(http.MethodPost, "/api/due/poll", nil))
	if due.Pending != 1 || due.Head == nil || due.Head.ID != booked.ID {
		t.Fatalf("due after poll = %+v", due)
	}

	w = ts.do(http.MethodPost, "/api/due/confirm", map[string]string{"id": "someone-else"})
	if w.Code != http.StatusConflict {
		t.Errorf("confirm wrong head = %d, want 409", w.Code)
	}

	w = ts.do(http.MethodPost, "/api/due/confirm", map[string]string{"id": booked.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("confirm = %d: %s", w.Code, w.Body.String())
	}
	bill := decode[models.Bill](t, w)
	if bill.Total != 50000 || !bill.Date.Equal(ts.now) || bill.ID == booked.ID {
		t.Errorf("bill = %+v", bill)
	}

	if list := decode[listBody[models.Booking]](t, ts.do(http.MethodGet, "/api/bookings", nil)); list.Total != 0 {
		t.Errorf("bookings left = %d", list.Total)
	}
}

func TestBackupEndpoints(t *testing.T) {
	ts := newServer(t, testConfig())

	w := ts.do(http.MethodGet, "/api/backup/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "salon-backup-20240510-120000.json") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	exported := w.Body.String()

	w = ts.do(http.MethodPost, "/api/backup/import", exported)
	if got := decode[errorBody](t, w); w.Code != http.StatusBadRequest || got.Code != "confirmation_required" {
		t.Errorf("import without confirm = %d %q", w.Code, got.Code)
	}

	w = ts.do(http.MethodPost, "/api/backup/import?confirm=true", `{"bills": {}}`)
	if got := decode[errorBody](t, w); got.Code != "invalid_backup" {
		t.Errorf("malformed import = %d %q", w.Code, got.Code)
	}

	if w := ts.do(http.MethodPost, "/api/backup/import?confirm=true", exported); w.Code != http.StatusOK {
		t.Errorf("import = %d: %s", w.Code, w.Body.String())
	}

	w = ts.do(http.MethodPost, "/api/backup/archive", nil)
	if got := decode[errorBody](t, w); w.Code != http.StatusServiceUnavailable || got.Code != "archive_not_configured" {
		t.Errorf("archive = %d %q", w.Code, got.Code)
	}
}

func TestReportsValidateDates(t *testing.T) {
	ts := newServer(t, testConfig())

	if w := ts.do(http.MethodGet, "/api/reports/revenue?date=10-05-2024", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad date = %d", w.Code)
	}
	if w := ts.do(http.MethodGet, "/api/reports/top-services?from=2024-05-10&to=2024-05-01", nil); w.Code != http.StatusBadRequest {
		t.Errorf("reversed range = %d", w.Code)
	}
	if w := ts.do(http.MethodGet, "/api/reports/series", nil); w.Code != http.StatusOK {
		t.Errorf("series = %d", w.Code)
	}
}
