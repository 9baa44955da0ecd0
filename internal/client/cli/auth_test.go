package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
)

func TestRegister_Success(t *testing.T) {
	f := &fakeAuth{user: &smodels.UserView{ID: "2", Name: "Alice"}}
	a, out := newTestApp(f, &fakeAPI{})

	stubInputs(t, []byte("secret"), "alice@example.org", "Alice")

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regEmail != "alice@example.org" || f.regPass != "secret" || f.regName != "Alice" {
		t.Fatalf("Register args mismatch: %q %q %q", f.regEmail, f.regPass, f.regName)
	}
	if !a.isLoggedIn() {
		t.Fatal("expected to be logged in after register")
	}
	if !strings.Contains(out.String(), "Welcome, Alice!") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestLogin_Success(t *testing.T) {
	f := &fakeAuth{user: &smodels.UserView{ID: "1", Name: "Alex Johnson"}}
	a, _ := newTestApp(f, &fakeAPI{})

	stubInputs(t, []byte("password123"), "user@example.com")

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginEmail != "user@example.com" || f.loginPass != "password123" {
		t.Fatalf("Login args mismatch: %q %q", f.loginEmail, f.loginPass)
	}
	if a.getStatus() != "(Alex Johnson )" {
		t.Fatalf("unexpected status: %q", a.getStatus())
	}
}

func TestLogin_Failure(t *testing.T) {
	f := &fakeAuth{err: errors.New("login error: invalid email or password")}
	a, _ := newTestApp(f, &fakeAPI{})

	stubInputs(t, []byte("bad"), "user@example.com")

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if a.isLoggedIn() {
		t.Fatal("must not be logged in")
	}
}

func TestLogin_InputError(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(f, &fakeAPI{})

	stubInputs(t, nil)

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("expected input error")
	}
	if f.loginEmail != "" {
		t.Fatal("auth service must not be called")
	}
}

func TestLogout(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(f, &fakeAPI{})
	a.user = &smodels.UserView{ID: "1"}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.loggedOut {
		t.Fatalf("Logout not called")
	}
	if a.isLoggedIn() {
		t.Fatalf("user not cleared")
	}
}

func TestLogout_ErrorPropagates(t *testing.T) {
	f := &fakeAuth{logoutErr: errors.New("clean-fail")}
	a, _ := newTestApp(f, &fakeAPI{})
	a.user = &smodels.UserView{ID: "1"}

	if err := a.Logout(context.Background()); err == nil {
		t.Fatalf("want error from Logout")
	}
	if !a.isLoggedIn() {
		t.Fatal("user must be kept when logout fails")
	}
}

func TestMe(t *testing.T) {
	api := &fakeAPI{me: &smodels.UserView{ID: "1", Name: "Alex Johnson", Email: "user@example.com"}}
	a, out := newTestApp(&fakeAuth{}, api)

	if err := a.Me(context.Background()); err != nil {
		t.Fatalf("Me err: %v", err)
	}
	if !strings.Contains(out.String(), "Email:  user@example.com") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
