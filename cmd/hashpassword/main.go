// Command hashpassword prints a bcrypt hash for ADMIN_PASSWORD_HASH, used
// when the dashboard runs with AUTH_MODE=strict.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"ecokosova-dashboard/internal/session"
)

func main() {
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "plain-text admin password")
	email := flag.String("email", session.DefaultUser().Email, "email to check the hash against")
	flag.Parse()

	if *password == "" {
		log.Fatal("password is required (-password or ADMIN_PASSWORD)")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	// Round-trip through the verifier the server uses
	if !session.NewBcryptVerifier(string(hash), *email).Verify(*email, *password) {
		log.Fatal("❌ Generated hash failed verification")
	}

	log.Printf("✅ Hash verified for %s", *email)
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
	fmt.Printf("ADMIN_EMAILS=%s\n", *email)
}
