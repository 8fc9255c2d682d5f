package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"harvesthub/internal/http/handlers"
	"harvesthub/internal/repos"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	app := fiber.New()
	handlers.Build(db).Register(app)
	return app
}

func jsonReq(method, path, body, token string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func loginAs(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/api/auth/login", `{"username":"`+username+`","password":"`+password+`"}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login as %s: status %d", username, resp.StatusCode)
	}
	var out struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Data.Token == "" {
		t.Fatal("login returned no token")
	}
	return out.Data.Token
}

type bookingResp struct {
	Data struct {
		ID           int64           `json:"id"`
		UserID       int64           `json:"user_id"`
		WorkshopID   *int64          `json:"workshop_id"`
		EventID      *int64          `json:"event_id"`
		Participants int             `json:"participants"`
		TotalAmount  decimal.Decimal `json:"total_amount"`
		Status       string          `json:"status"`
	} `json:"data"`
}

func TestBookingRequiresAuth(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(jsonReq("POST", "/api/bookings", `{"workshop_id":1,"booking_date":"2026-04-15"}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
}

func TestBookingRejectsBothAndNeitherEntity(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "ayodya", "Passw0rd!")

	both := `{"workshop_id":1,"event_id":1,"booking_date":"2026-04-15"}`
	resp, err := app.Test(jsonReq("POST", "/api/bookings", both, token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("both references: expected 400, got %d", resp.StatusCode)
	}

	neither := `{"booking_date":"2026-04-15"}`
	resp, err = app.Test(jsonReq("POST", "/api/bookings", neither, token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("neither reference: expected 400, got %d", resp.StatusCode)
	}
}

func TestBookingRejectsMalformedDateAndMissingEntity(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "ayodya", "Passw0rd!")

	resp, err := app.Test(jsonReq("POST", "/api/bookings", `{"workshop_id":1,"booking_date":"not-a-date"}`, token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed date: expected 400, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonReq("POST", "/api/bookings", `{"workshop_id":9999,"booking_date":"2026-04-15"}`, token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("vanished workshop: expected 404, got %d", resp.StatusCode)
	}
}

// A forged client total is ignored: the server reprices from the stored
// catalog row (seeded workshop 1 costs 10000 per person).
func TestBookingTotalIsServerComputed(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "ayodya", "Passw0rd!")

	body := `{"workshop_id":1,"booking_date":"2026-04-15","participants":3,"total_amount":1}`
	resp, err := app.Test(jsonReq("POST", "/api/bookings", body, token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, raw)
	}

	var out bookingResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if !out.Data.TotalAmount.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("stored total = %s, want 30000", out.Data.TotalAmount)
	}
	if out.Data.Status != "pending" {
		t.Fatalf("status = %q, want pending", out.Data.Status)
	}
	if out.Data.WorkshopID == nil || *out.Data.WorkshopID != 1 {
		t.Fatalf("workshop reference lost: %+v", out.Data)
	}
}

func TestBookingFreeEventCostsNothing(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "ayodya", "Passw0rd!")

	// Seeded event 1 is free.
	body := `{"event_id":1,"booking_date":"2026-04-18","participants":4}`
	resp, err := app.Test(jsonReq("POST", "/api/bookings", body, token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var out bookingResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if !out.Data.TotalAmount.IsZero() {
		t.Fatalf("free event total = %s, want 0", out.Data.TotalAmount)
	}
}

func TestBookingDefaultsParticipantsAndAcceptsPastDate(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "ayodya", "Passw0rd!")

	// Zero participants degrades to one; a past date is accepted server-side.
	body := `{"workshop_id":3,"booking_date":"2020-01-01","participants":0}`
	resp, err := app.Test(jsonReq("POST", "/api/bookings", body, token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var out bookingResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Data.Participants != 1 {
		t.Fatalf("participants = %d, want 1", out.Data.Participants)
	}
	if !out.Data.TotalAmount.Equal(decimal.NewFromInt(8000)) {
		t.Fatalf("total = %s, want 8000", out.Data.TotalAmount)
	}
}

func TestBookingListShowsOwnBookingsOnly(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "ayodya", "Passw0rd!")

	resp, err := app.Test(jsonReq("POST", "/api/bookings", `{"workshop_id":2,"booking_date":"2026-04-20","participants":2}`, token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonReq("GET", "/api/bookings", "", token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.StatusCode)
	}
	var list struct {
		Data []struct {
			WorkshopTitle *string `json:"workshop_title"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list.Data) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(list.Data))
	}

	// The admin has made no bookings.
	adminToken := loginAs(t, app, "admin", "Adm1nPass!")
	resp, err = app.Test(jsonReq("GET", "/api/bookings", "", adminToken))
	if err != nil {
		t.Fatal(err)
	}
	var adminList struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&adminList); err != nil {
		t.Fatal(err)
	}
	if len(adminList.Data) != 0 {
		t.Fatalf("admin sees %d bookings, want 0", len(adminList.Data))
	}
}
