package session

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Verifier decides whether non-empty credentials are accepted
type Verifier interface {
	Verify(email, password string) bool
}

// DemoVerifier accepts every credential pair. It is the default so the
// dashboard can be explored without a user directory.
type DemoVerifier struct{}

func (DemoVerifier) Verify(email, password string) bool { return true }

// BcryptVerifier checks the password against a single configured hash.
// If Emails is set, only those addresses may sign in.
type BcryptVerifier struct {
	Hash   []byte
	Emails []string
}

func NewBcryptVerifier(hash string, emails ...string) *BcryptVerifier {
	return &BcryptVerifier{Hash: []byte(hash), Emails: emails}
}

func (v *BcryptVerifier) Verify(email, password string) bool {
	if len(v.Emails) > 0 && !v.allowed(email) {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.Hash, []byte(password)) == nil
}

func (v *BcryptVerifier) allowed(email string) bool {
	for _, e := range v.Emails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}
