package helpers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
	CartCountKey     contextKey = "cart_count"
)

// FlashRedirect sends the user back with a status and human-readable
// message carried as query parameters, the PRG way every mutating
// handler reports its outcome.
func FlashRedirect(w http.ResponseWriter, r *http.Request, target, status, message string) {
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	dest := fmt.Sprintf("%s%sstatus=%s&message=%s", target, sep, url.QueryEscape(status), url.QueryEscape(message))
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// Referer falls back when the browser did not send one.
func Referer(r *http.Request, fallback string) string {
	if ref := r.Header.Get("Referer"); ref != "" {
		return ref
	}
	return fallback
}

// IsAjax reports whether the caller asked for a JSON response instead
// of a redirect.
func IsAjax(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("HashPassword: error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}

func PasswordCompare(hashPass string, password []byte) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashPass), password) == nil
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s characters.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s characters.", err.Field(), err.Param())
		case "gte":
			errorMessages[field] = fmt.Sprintf("%s must be %s or more.", err.Field(), err.Param())
		case "lte":
			errorMessages[field] = fmt.Sprintf("%s must be %s or less.", err.Field(), err.Param())
		case "eqfield":
			errorMessages[field] = fmt.Sprintf("%s does not match.", err.Field())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed %s validation.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}

// JoinValidationErrors flattens the per-field messages into one flash
// message line.
func JoinValidationErrors(errs validator.ValidationErrors) string {
	formatted := FormatValidationErrors(errs)
	parts := make([]string, 0, len(formatted))
	for _, msg := range formatted {
		parts = append(parts, msg)
	}
	return strings.Join(parts, " ")
}
