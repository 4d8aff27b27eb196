package middlewares

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/ssapkota/hamropasal/app/utils/sessions"
)

// AuthRequired gates a route behind a logged-in session. The user id
// and the loaded user land in the request context for handlers.
func AuthRequired(sessionStore sessions.SessionStore, userRepo repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == "" {
				target := "/login/?next=" + url.QueryEscape(r.URL.RequestURI())
				helpers.FlashRedirect(w, r, target, "error", "Please log in to continue.")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				log.Printf("AuthRequired: error loading user %s: %v", userID, err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if user == nil {
				// Stale session referencing a deleted account.
				_ = sessionStore.ClearSession(w, r)
				helpers.FlashRedirect(w, r, "/login/", "error", "Please log in to continue.")
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, userID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartCount annotates every request with the session cart's summed
// quantity for the header badge.
func CartCount(cartStore sessions.CartStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cart := cartStore.Get(r)
			ctx := context.WithValue(r.Context(), helpers.CartCountKey, cart.ItemCount())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
