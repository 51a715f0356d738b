package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheck(t *testing.T) {
	Cost = bcrypt.MinCost
	t.Cleanup(func() { Cost = bcrypt.DefaultCost })

	h, err := Hash("pw1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if !Check(h, "pw1") {
		t.Fatalf("expected matching password to check")
	}
	if Check(h, "pw2") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHash_Salted(t *testing.T) {
	Cost = bcrypt.MinCost
	t.Cleanup(func() { Cost = bcrypt.DefaultCost })

	a, _ := Hash("same")
	b, _ := Hash("same")
	if a == b {
		t.Fatalf("expected distinct hashes for the same password")
	}
}

func TestCheckDummy(t *testing.T) {
	if CheckDummy("cogip-dummy-password") {
		t.Fatalf("CheckDummy must always fail")
	}
}
