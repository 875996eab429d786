package http

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const adminPasswordHeader = "X-Admin-Password"

// AdminAuth gates the admin routes behind a shared password. Only the bcrypt
// hash is kept in memory.
type AdminAuth struct {
	hash []byte
}

func NewAdminAuth(password string) (*AdminAuth, error) {
	if password == "" {
		return nil, fmt.Errorf("admin password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AdminAuth{hash: hash}, nil
}

func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		password := r.Header.Get(adminPasswordHeader)
		if password == "" {
			respondWithError(w, http.StatusUnauthorized, "Admin password required")
			return
		}
		if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
			log.Warn().Str("remote_addr", r.RemoteAddr).Msg("Rejected admin request with wrong password")
			respondWithError(w, http.StatusUnauthorized, "Invalid admin password")
			return
		}
		next.ServeHTTP(w, r)
	})
}
