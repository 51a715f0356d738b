// Package password hashes and checks user passwords with bcrypt.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// MaxBytes is the longest password bcrypt accepts.
const MaxBytes = 72

// ErrTooLong is returned by Hash for passwords over MaxBytes.
var ErrTooLong = bcrypt.ErrPasswordTooLong

// Cost is the bcrypt work factor used for new hashes.
var Cost = bcrypt.DefaultCost

// dummyHash is compared against when a username does not exist, so a miss costs
// the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("cogip-dummy-password"), bcrypt.DefaultCost)

// Hash returns a salted bcrypt hash of plain.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Check reports whether plain matches hash. The comparison is constant time.
func Check(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// CheckDummy burns one comparison against a fixed hash and always returns false.
func CheckDummy(plain string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
	return false
}
