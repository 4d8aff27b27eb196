package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSONNeverCarriesPasswordHash(t *testing.T) {
	user := User{
		ID:       "user-1",
		Username: "ram",
		Email:    "ram@example.com",
		Password: "$2a$10$bcryptsecret",
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "bcryptsecret")
	assert.NotContains(t, string(raw), "Password")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	_, ok := decoded["Password"]
	assert.False(t, ok)
}
