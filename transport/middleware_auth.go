package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/account-service/application/token"
	"github.com/muhammadheryan/account-service/constant"
	utilsContext "github.com/muhammadheryan/account-service/utils/context"
	"github.com/muhammadheryan/account-service/utils/errors"
)

// AuthMiddleware validates the access token of protected routes and puts the account id
// into the request context.
func AuthMiddleware(tokenApp token.TokenApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			accessToken := strings.TrimPrefix(auth, "Bearer ")

			claims, err := tokenApp.ValidateAccess(r.Context(), accessToken)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := utilsContext.WithAccountID(r.Context(), claims.AccountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	switch path {
	case "/signup", "/login", "/login/refresh", "/logout", "/forgot-password", "/password-reset":
		return true
	}
	return false
}
