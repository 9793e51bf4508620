package session

//go:generate mockgen -source=session.go -destination=mock_session.go -package=session

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/savesmart/pkg/utils"
	"go.uber.org/zap"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// Resolver reads the persisted session. An empty id means nobody is logged in.
type Resolver interface {
	CurrentUserID(ctx context.Context) (string, error)
}

// Middleware resolves the current user once per request and stores the id under UserIDKey.
// Requests without a session are rejected with 401.
func Middleware(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := resolver.CurrentUserID(r.Context())
			if err != nil {
				zap.L().Error("can't resolve session", zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if userID == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
