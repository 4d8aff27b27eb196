package configs

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
)

type SessionKeys struct {
	AuthKey []byte
	EncKey  []byte
}

// LoadSessionKeysFromEnv decodes the base64 key material the cookie
// stores sign and encrypt with.
func LoadSessionKeysFromEnv() (*SessionKeys, error) {
	if LoadENV.AppAuthKey == "" {
		return nil, fmt.Errorf("APP_AUTH_KEY environment variable not set")
	}
	if LoadENV.AppEncKey == "" {
		return nil, fmt.Errorf("APP_ENC_KEY environment variable not set")
	}

	authKey, err := base64.URLEncoding.DecodeString(LoadENV.AppAuthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_AUTH_KEY from Base64: %w", err)
	}
	encKey, err := base64.URLEncoding.DecodeString(LoadENV.AppEncKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_ENC_KEY from Base64: %w", err)
	}

	if len(encKey) != 16 && len(encKey) != 24 && len(encKey) != 32 {
		return nil, fmt.Errorf("APP_ENC_KEY has invalid length %d after decoding; must be 16, 24, or 32 bytes", len(encKey))
	}

	return &SessionKeys{AuthKey: authKey, EncKey: encKey}, nil
}

// GenerateAndPrintSessionKeys prints fresh key material for .env.
// Regenerating invalidates existing sessions.
func GenerateAndPrintSessionKeys() error {
	authKey := securecookie.GenerateRandomKey(64)
	if authKey == nil {
		return fmt.Errorf("could not generate authentication key")
	}
	encKey := securecookie.GenerateRandomKey(32)
	if encKey == nil {
		return fmt.Errorf("could not generate encryption key")
	}
	csrfKey := securecookie.GenerateRandomKey(32)
	if csrfKey == nil {
		return fmt.Errorf("could not generate CSRF key")
	}

	fmt.Println("Add these to your .env file:")
	fmt.Printf("APP_AUTH_KEY=%s\n", base64.URLEncoding.EncodeToString(authKey))
	fmt.Printf("APP_ENC_KEY=%s\n", base64.URLEncoding.EncodeToString(encKey))
	fmt.Printf("CSRF_KEY=%s\n", base64.URLEncoding.EncodeToString(csrfKey))

	return nil
}
