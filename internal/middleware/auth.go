package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/dayoon-choi/todolist/internal/validation"
)

// TokenVerifier checks a bearer token and returns the embedded user id.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// Auth gates protected routes on the custom "token" request header. A missing
// header fails header validation (400); a present but unverifiable token is
// rejected with 401. On success the verified user id is attached to the
// request context. The gate never consults the credential store — possession
// of a valid token is sufficient.
type Auth struct {
	verifier TokenVerifier
}

func NewAuth(verifier TokenVerifier) *Auth {
	return &Auth{verifier: verifier}
}

func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hdr := validation.AuthHeader{Token: r.Header.Get("token")}
		if errs := validation.Check(hdr); errs != nil {
			writeValidationErrors(w, errs)
			return
		}

		userID, err := a.verifier.Verify(hdr.Token)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := SetUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeValidationErrors(w http.ResponseWriter, errs []validation.FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"errors":  errs,
	})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
