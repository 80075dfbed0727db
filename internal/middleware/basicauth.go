package middleware

import (
	"crypto/subtle"
	"net/http"
)

// BasicAuth gates every request behind HTTP Basic credentials. A gate
// constructed with empty credentials stays locked rather than open.
func BasicAuth(user, pass string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user == "" || pass == "" {
				challenge(w)
				return
			}

			u, p, ok := r.BasicAuth()
			if !ok {
				challenge(w)
				return
			}

			userOK := subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(p), []byte(pass)) == 1
			if !userOK || !passOK {
				challenge(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="LD Clash"`)
	http.Error(w, "Authentication required", http.StatusUnauthorized)
}
