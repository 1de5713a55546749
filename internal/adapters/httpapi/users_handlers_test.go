package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestSignup_CreatedWithoutPasswordInBody(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	rec := api.do(t, http.MethodPost, "/signup", "", map[string]string{
		"email": "a@b.com", "password": "secret1", "name": "Jane", "about": "X", "avatar": "http://x/a.png",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}

	body := decodeMap(t, rec)
	for _, k := range []string{"_id", "name", "about", "avatar", "email"} {
		if _, ok := body[k]; !ok {
			t.Fatalf("missing key %q in %v", k, body)
		}
	}
	for _, k := range []string{"password", "passwordDigest", "password_digest"} {
		if _, ok := body[k]; ok {
			t.Fatalf("body must not contain %q: %v", k, body)
		}
	}
}

func TestSignup_AcceptsOneCharacterAbout(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	rec := api.do(t, http.MethodPost, "/signup", "", map[string]string{
		"email": "a@b.com", "password": "secret1", "name": "Jane", "about": "X", "avatar": "http://x",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)
	if body["about"] != "X" || body["avatar"] != "http://x" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestSignup_ShortPassword_400SingleFieldError(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	rec := api.do(t, http.MethodPost, "/signup", "", map[string]string{
		"email": "a@b.com", "password": "abc",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	v := decodeValidation(t, rec)
	if len(v.Errors) != 1 || v.Errors[0].Field != "password" {
		t.Fatalf("expected exactly one error on password, got %+v", v.Errors)
	}

	// The account was not created.
	if _, err := api.users.GetByEmail(context.Background(), "a@b.com"); err == nil {
		t.Fatalf("account must not exist")
	}
}

func TestSignup_DuplicateEmail_409(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	first := api.do(t, http.MethodPost, "/signup", "", map[string]string{"email": "a@b.com", "password": "secret1"})
	if first.Code != http.StatusCreated {
		t.Fatalf("first signup: got %d", first.Code)
	}
	second := api.do(t, http.MethodPost, "/signup", "", map[string]string{"email": "a@b.com", "password": "secret2"})
	if second.Code != http.StatusConflict {
		t.Fatalf("second signup: got %d body=%s", second.Code, second.Body.String())
	}
}

func TestSignin_WrongPassword_401(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	api.signupAndSignin(t, "a@b.com", "secret1")

	rec := api.do(t, http.MethodPost, "/signin", "", map[string]string{"email": "a@b.com", "password": "wrong-pass"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetMe_RequiresAuth(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	id, bearer := api.signupAndSignin(t, "a@b.com", "secret1")

	rec := api.do(t, http.MethodGet, "/users/me", bearer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)
	if body["_id"] != id || body["email"] != "a@b.com" || body["name"] != "Jane" {
		t.Fatalf("unexpected body: %v", body)
	}

	rec = api.do(t, http.MethodGet, "/users/me", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no header: got %d want 401", rec.Code)
	}
}

func TestGetUserByID(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	id, bearer := api.signupAndSignin(t, "a@b.com", "secret1")

	rec := api.do(t, http.MethodGet, "/users/"+id, bearer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)
	if body["_id"] != id {
		t.Fatalf("unexpected body: %v", body)
	}
	// Directory views do not expose email addresses.
	if _, ok := body["email"]; ok {
		t.Fatalf("by-id view must not contain email: %v", body)
	}
}

func TestGetUserByID_MalformedID_400(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	_, bearer := api.signupAndSignin(t, "a@b.com", "secret1")

	rec := api.do(t, http.MethodGet, "/users/not-a-uuid", bearer, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	v := decodeValidation(t, rec)
	if len(v.Errors) != 1 || v.Errors[0].Field != "userId" {
		t.Fatalf("expected one error on userId, got %+v", v.Errors)
	}
}

func TestGetUserByID_Unknown_404(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	_, bearer := api.signupAndSignin(t, "a@b.com", "secret1")

	rec := api.do(t, http.MethodGet, "/users/"+uuid.NewString(), bearer, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	_, bearer := api.signupAndSignin(t, "a@b.com", "secret1")
	rec := api.do(t, http.MethodPost, "/signup", "", map[string]string{"email": "b@b.com", "password": "secret1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("second signup: got %d", rec.Code)
	}

	rec = api.do(t, http.MethodGet, "/users", bearer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 users, got %d", len(out))
	}
}

func TestPatchMe_TriState(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	_, bearer := api.signupAndSignin(t, "a@b.com", "secret1")

	// Value: applied.
	rec := api.do(t, http.MethodPatch, "/users/me", bearer, map[string]any{"name": "New Name"})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch value: got %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)
	if body["name"] != "New Name" || body["about"] != "X" {
		t.Fatalf("unexpected body after patch: %v", body)
	}

	// Explicit null: rejected.
	rec = api.do(t, http.MethodPatch, "/users/me", bearer, map[string]any{"about": nil})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("patch null: got %d body=%s", rec.Code, rec.Body.String())
	}
	v := decodeValidation(t, rec)
	if len(v.Errors) != 1 || v.Errors[0].Field != "about" {
		t.Fatalf("expected one error on about, got %+v", v.Errors)
	}

	// Out-of-range value: rejected.
	rec = api.do(t, http.MethodPatch, "/users/me", bearer, map[string]any{"name": "x"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("patch short name: got %d body=%s", rec.Code, rec.Body.String())
	}

	// Absent fields: untouched.
	rec = api.do(t, http.MethodPatch, "/users/me", bearer, map[string]any{})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch empty: got %d body=%s", rec.Code, rec.Body.String())
	}
	body = decodeMap(t, rec)
	if body["name"] != "New Name" {
		t.Fatalf("name should persist: %v", body)
	}
}

func TestPatchAvatar(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	_, bearer := api.signupAndSignin(t, "a@b.com", "secret1")

	rec := api.do(t, http.MethodPatch, "/users/me/avatar", bearer, map[string]string{"avatar": "http://x/new.png"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)
	if body["avatar"] != "http://x/new.png" {
		t.Fatalf("unexpected body: %v", body)
	}

	rec = api.do(t, http.MethodPatch, "/users/me/avatar", bearer, map[string]string{"avatar": "not a url"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad avatar: got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestUnmatchedRoute_404Message(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	rec := api.do(t, http.MethodGet, "/nope", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", rec.Code)
	}
	body := decodeMap(t, rec)
	if body["message"] == "" {
		t.Fatalf("expected a message body, got %v", body)
	}
}

func TestHealthz_Unauthenticated(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	rec := api.do(t, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
}

func TestMalformedJSONBody_400(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	req := newRawRequest(t, http.MethodPost, "/signup", "{not json")
	rec := doRaw(api, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
}
