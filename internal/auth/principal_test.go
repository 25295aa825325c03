package auth

import "testing"

func TestLogin(t *testing.T) {
	p := Login(Credentials{Email: " kid@example.com ", Password: "whatever"})
	if p.Verified() {
		t.Error("principal must never be verified")
	}
	if !p.Can(CapStudy) {
		t.Error("expected CapStudy")
	}
	if p.Can("admin") {
		t.Error("unexpected capability")
	}
	if p.Email != "kid@example.com" {
		t.Errorf("email = %q", p.Email)
	}
	if got := p.Display(); got != "kid@example.com (unverified)" {
		t.Errorf("Display() = %q", got)
	}
}

func TestLogin_BlankFormIsGuest(t *testing.T) {
	p := Login(Credentials{})
	if !p.Can(CapStudy) {
		t.Error("blank login should still reach the study screen")
	}
	if got := p.Display(); got != "guest (unverified)" {
		t.Errorf("Display() = %q", got)
	}
}

func TestSignup(t *testing.T) {
	p := Signup(Registration{Name: " Ada ", Email: "ada@example.com", Password: "pw"})
	if p.Display() != "Ada (unverified)" {
		t.Errorf("Display() = %q", p.Display())
	}
	if !p.Can(CapStudy) || p.Verified() {
		t.Error("signup should yield an unverified study principal")
	}
}

func TestZeroPrincipal(t *testing.T) {
	var p Principal
	if p.Can(CapStudy) {
		t.Error("zero principal has no capabilities")
	}
	if p.Display() != "guest (unverified)" {
		t.Errorf("Display() = %q", p.Display())
	}
}
