package validate

import "testing"

type signupShape struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"omitempty,min=2,max=30"`
}

func TestStruct_Valid(t *testing.T) {
	t.Parallel()

	in := signupShape{Email: "a@b.com", Password: "secret1", Name: "Jane"}
	if fields := Struct(in); fields != nil {
		t.Fatalf("expected no errors, got %+v", fields)
	}
}

func TestStruct_ShortPassword_SingleEntry(t *testing.T) {
	t.Parallel()

	in := signupShape{Email: "a@b.com", Password: "abc"}
	fields := Struct(in)
	if len(fields) != 1 {
		t.Fatalf("expected exactly 1 error, got %+v", fields)
	}
	if fields[0].Field != "password" {
		t.Fatalf("field: got %q want %q", fields[0].Field, "password")
	}
}

func TestStruct_ErrorsInDeclarationOrder(t *testing.T) {
	t.Parallel()

	in := signupShape{Email: "not-an-email", Password: "abc", Name: "x"}
	fields := Struct(in)
	if len(fields) != 3 {
		t.Fatalf("expected 3 errors, got %+v", fields)
	}
	want := []string{"email", "password", "name"}
	for i, f := range fields {
		if f.Field != want[i] {
			t.Fatalf("field[%d]: got %q want %q (all: %+v)", i, f.Field, want[i], fields)
		}
	}
}

func TestStruct_JSONFieldNames(t *testing.T) {
	t.Parallel()

	type renamed struct {
		Link string `json:"link" validate:"required,url"`
	}
	fields := Struct(renamed{Link: "not a url"})
	if len(fields) != 1 || fields[0].Field != "link" {
		t.Fatalf("expected a single error on %q, got %+v", "link", fields)
	}
}
