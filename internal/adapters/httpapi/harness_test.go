package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	memcardrepo "github.com/placegram/places-api/internal/adapters/memory/cardrepo"
	memclock "github.com/placegram/places-api/internal/adapters/memory/clock"
	memuserrepo "github.com/placegram/places-api/internal/adapters/memory/userrepo"
	"github.com/placegram/places-api/internal/app/cards"
	"github.com/placegram/places-api/internal/app/users"
	"github.com/placegram/places-api/internal/platform/auth/password"
	"github.com/placegram/places-api/internal/platform/auth/token"
)

// testAPI wires the full router against memory repositories.
type testAPI struct {
	handler http.Handler
	users   *memuserrepo.Repo
	cards   *memcardrepo.Repo
	clock   *memclock.ManualClock
	codec   *token.Codec
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	userRepo := memuserrepo.NewRepo()
	cardRepo := memcardrepo.NewRepo()
	clk := memclock.NewManualClock(time.Unix(1700000000, 0).UTC())
	codec := token.NewCodecWithClock([]byte("test-secret"), 7*24*time.Hour, clk)
	hasher := password.NewBcryptHasherWithCost(bcrypt.MinCost)
	log := discardLogger()

	srv := NewServer(
		users.NewService(userRepo, hasher, codec),
		cards.NewService(cardRepo, clk),
		log,
	)
	h := NewRouter(srv, RouterOptions{AuthMiddleware: NewAuthMiddleware(codec, log)})

	return &testAPI{handler: h, users: userRepo, cards: cardRepo, clock: clk, codec: codec}
}

// do sends a JSON request; a non-empty bearer adds the Authorization header.
func (a *testAPI) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// signupAndSignin registers an account and returns its id and a bearer token.
func (a *testAPI) signupAndSignin(t *testing.T, email, pass string) (id, bearer string) {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/signup", "", map[string]string{
		"email": email, "password": pass, "name": "Jane", "about": "X", "avatar": "http://x/a.png",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode signup body: %v", err)
	}

	rec = a.do(t, http.MethodPost, "/signin", "", map[string]string{"email": email, "password": pass})
	if rec.Code != http.StatusOK {
		t.Fatalf("signin status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var signin signinResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &signin); err != nil {
		t.Fatalf("decode signin body: %v", err)
	}
	if signin.Token == "" {
		t.Fatalf("signin returned empty token")
	}
	return created.ID, signin.Token
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return m
}

func newRawRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doRaw(a *testAPI, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeValidation(t *testing.T, rec *httptest.ResponseRecorder) validationResponse {
	t.Helper()
	var v validationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode validation body %q: %v", rec.Body.String(), err)
	}
	return v
}
