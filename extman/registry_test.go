package extman_test

import (
	"errors"
	"testing"

	"github.com/chframe/extman/extman"
)

func TestManagerAddRejectsWrongType(t *testing.T) {
	m := extman.New()
	ext := &fakeExtension{name: "deflate"}
	badType := &wrongTypeExtension{fakeExtension: ext}
	if err := m.Add(badType); err == nil {
		t.Fatal("expected an error for wrong extension type")
	}
	var regErr *extman.RegistrationError
	if err := m.Add(badType); !errors.As(err, &regErr) {
		t.Fatalf("expected *extman.RegistrationError, got %T", err)
	}
	if len(m.Extensions()) != 0 {
		t.Fatalf("registry state must be untouched after a rejected Add, got %d extensions", len(m.Extensions()))
	}
}

func TestManagerAddRejectsEmptyName(t *testing.T) {
	m := extman.New()
	if err := m.Add(&fakeExtension{name: ""}); err == nil {
		t.Fatal("expected an error for empty name")
	}
	if len(m.Extensions()) != 0 {
		t.Fatal("registry state must be untouched after a rejected Add")
	}
}

func TestManagerAddRejectsDuplicateName(t *testing.T) {
	m := extman.New()
	if err := m.Add(&fakeExtension{name: "deflate"}); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if err := m.Add(&fakeExtension{name: "deflate"}); err == nil {
		t.Fatal("expected an error for duplicate name")
	}
	if len(m.Extensions()) != 1 {
		t.Fatalf("duplicate rejection must not touch state, got %d extensions", len(m.Extensions()))
	}
}

func TestManagerAddSucceedsInOrder(t *testing.T) {
	m := extman.New()
	for _, name := range []string{"deflate", "reverse", "tar"} {
		if err := m.Add(&fakeExtension{name: name}); err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
	}
	var got []string
	for _, e := range m.Extensions() {
		got = append(got, e.Name())
	}
	want := []string{"deflate", "reverse", "tar"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// wrongTypeExtension wraps a fakeExtension but reports a bogus Type(),
// to exercise Registry.Add's type validation.
type wrongTypeExtension struct{ *fakeExtension }

func (w *wrongTypeExtension) Type() string { return "bogus" }
