package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"harvesthub/internal/repos"
)

// Seeded passwords must be stored hashed, never plaintext.
func TestSeededPasswordsAreHashed(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	var hashes []string
	if err := db.Select(&hashes, `SELECT password_hash FROM users`); err != nil {
		t.Fatalf("select hashes: %v", err)
	}
	if len(hashes) == 0 {
		t.Fatal("no users seeded")
	}
	for _, h := range hashes {
		if strings.Contains(h, "Passw0rd!") || strings.Contains(h, "Adm1nPass!") {
			t.Fatal("hash contains plaintext password")
		}
		if !strings.HasPrefix(h, "$2") {
			t.Fatalf("unexpected hash format: %s", h)
		}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashes[1]), []byte("Passw0rd!")); err != nil {
		t.Fatalf("seed hash does not validate known password: %v", err)
	}
}

func TestRegisterLoginMe(t *testing.T) {
	app := newTestApp(t)

	body := `{"username":"nimal","email":"nimal@example.test","password":"S3cretPass!","full_name":"Nimal Silva"}`
	resp, err := app.Test(jsonReq("POST", "/api/auth/register", body, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}
	var reg struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				Username string `json:"username"`
				Role     string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reg); err != nil {
		t.Fatal(err)
	}
	if reg.Data.Token == "" {
		t.Fatal("register returned no token")
	}
	if reg.Data.User.Role != "user" {
		t.Fatalf("self-service role = %q, want user", reg.Data.User.Role)
	}

	// Duplicate registration is rejected.
	resp, err = app.Test(jsonReq("POST", "/api/auth/register", body, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", resp.StatusCode)
	}

	// The fresh token resolves to the new account.
	resp, err = app.Test(jsonReq("GET", "/api/auth/me", "", reg.Data.Token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.StatusCode)
	}
	var me struct {
		Data struct {
			Username string `json:"username"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		t.Fatal(err)
	}
	if me.Data.Username != "nimal" {
		t.Fatalf("me resolved %q, want nimal", me.Data.Username)
	}
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(jsonReq("POST", "/api/auth/register",
		`{"username":"x","email":"nope","password":"short","full_name":""}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var out struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"username", "email", "password", "full_name"} {
		if out.Errors[field] == "" {
			t.Fatalf("missing inline error for %s: %v", field, out.Errors)
		}
	}
}

func TestBadCredentialsRejected(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(jsonReq("POST", "/api/auth/login", `{"username":"ayodya","password":"wrongpass!"}`, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	app := newTestApp(t)
	token := loginAs(t, app, "ayodya", "Passw0rd!")

	resp, err := app.Test(jsonReq("POST", "/api/auth/logout", "", token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonReq("GET", "/api/auth/me", "", token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("stale token: expected 401, got %d", resp.StatusCode)
	}
}

func TestUserListIsAdminOnly(t *testing.T) {
	app := newTestApp(t)

	userToken := loginAs(t, app, "ayodya", "Passw0rd!")
	resp, err := app.Test(jsonReq("GET", "/api/auth/users", "", userToken))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", resp.StatusCode)
	}

	adminToken := loginAs(t, app, "admin", "Adm1nPass!")
	resp, err = app.Test(jsonReq("GET", "/api/auth/users", "", adminToken))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", resp.StatusCode)
	}
	var out struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Data) < 2 {
		t.Fatalf("expected seeded users in list, got %d", len(out.Data))
	}
	for _, u := range out.Data {
		if _, leaked := u["password_hash"]; leaked {
			t.Fatal("password hash serialized in user list")
		}
	}
}
