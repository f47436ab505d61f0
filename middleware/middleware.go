package middleware

import (
	"context"
	"net/http"
	"strings"

	"souk/globals"
	"souk/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/julienschmidt/httprouter"
)

// TokenVerifier validates a bearer credential against the identity authority.
// Firebase's *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Verifier is set once in main before routes are installed.
var Verifier TokenVerifier

func SetVerifier(v TokenVerifier) {
	Verifier = v
}

// Authenticate gates a route behind bearer-token verification.
// Missing header or missing token -> 401. Verification failure -> 403.
// On success the decoded token is stored in the request context.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.RespondWithMessage(w, http.StatusUnauthorized, "Unauthorized Access")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) < 2 || parts[1] == "" {
			utils.RespondWithMessage(w, http.StatusUnauthorized, "Unauthorized Access")
			return
		}

		decoded, err := Verifier.VerifyIDToken(r.Context(), parts[1])
		if err != nil {
			utils.RespondWithMessage(w, http.StatusForbidden, "Forbidden Access.")
			return
		}

		ctx := context.WithValue(r.Context(), globals.TokenKey, decoded)
		if email, ok := decoded.Claims["email"].(string); ok {
			ctx = context.WithValue(ctx, globals.EmailKey, email)
		}
		next(w, r.WithContext(ctx), ps)
	}
}
