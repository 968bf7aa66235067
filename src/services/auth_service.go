package services

import (
	"errors"
	"log"
	"os"
	"sync"

	"Backend-EvalApp/src/utils"

	"golang.org/x/crypto/bcrypt"
)

// The app has a single admin identity behind one password. The plaintext
// comes from ADMIN_PASSWORD (default "12345") and is hashed once at
// startup so logins always go through a bcrypt compare.
const defaultAdminPassword = "12345"

var (
	adminHashOnce sync.Once
	adminHash     []byte
)

func getAdminHash() []byte {
	adminHashOnce.Do(func() {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = defaultAdminPassword
		}
		var err error
		adminHash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("❌ Failed to hash admin password:", err)
		}
	})
	return adminHash
}

// AuthenticateAdmin checks the admin password and returns a signed
// session token. The token is the explicit session object: its expiry is
// carried in the claims, nothing is kept in ambient state.
func AuthenticateAdmin(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(getAdminHash(), []byte(password)); err != nil {
		return "", errors.New("Invalid password")
	}

	return utils.GenerateJWT("admin")
}
