package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUnmarshal(t *testing.T) {
	payload := `{
		"email": "amina@souq.sa",
		"name": "Amina",
		"preferences": ["abayas", "shoes"],
		"member_since": "2023-04-01",
		"loyalty": {"tier": "gold", "points": 1200}
	}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(payload), &u))

	assert.Equal(t, "amina@souq.sa", u.Email)
	assert.Equal(t, "Amina", u.Name)
	assert.Equal(t, []string{"abayas", "shoes"}, u.Preferences)
	assert.Contains(t, u.Extra, "member_since")
	assert.Contains(t, u.Extra, "loyalty")
	assert.NotContains(t, u.Extra, "email")
}

func TestUserUnmarshalFailsClosed(t *testing.T) {
	cases := map[string]string{
		"missing email": `{"name": "Amina"}`,
		"empty email":   `{"email": ""}`,
		"numeric email": `{"email": 42}`,
		"numeric name":  `{"email": "a@b.com", "name": 7}`,
		"string prefs":  `{"email": "a@b.com", "preferences": "shoes"}`,
		"array payload": `[1, 2, 3]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			var u User
			err := json.Unmarshal([]byte(payload), &u)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidUser)
		})
	}
}

func TestUserRoundTripKeepsExtra(t *testing.T) {
	payload := `{"email":"a@b.com","name":"Amina","member_since":"2023-04-01"}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(payload), &u))

	u.Name = "Amina K"
	u.Preferences = []string{"bags"}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var again User
	require.NoError(t, json.Unmarshal(data, &again))

	assert.Equal(t, "a@b.com", again.Email)
	assert.Equal(t, "Amina K", again.Name)
	assert.Equal(t, []string{"bags"}, again.Preferences)
	assert.JSONEq(t, `"2023-04-01"`, string(again.Extra["member_since"]))
}

func TestUserMarshalKnownFieldsWin(t *testing.T) {
	u := User{
		Email: "real@b.com",
		Extra: map[string]json.RawMessage{
			"email": json.RawMessage(`"stale@b.com"`),
		},
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "real@b.com", decoded["email"])
}

func TestUserMarshalOmitsEmptyOptionalFields(t *testing.T) {
	data, err := json.Marshal(User{Email: "a@b.com"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "name")
	assert.NotContains(t, decoded, "preferences")
}
