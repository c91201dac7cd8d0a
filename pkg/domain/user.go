package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidUser is returned when a wire payload does not decode into a
// usable user record (missing email, wrong field types, not an object).
var ErrInvalidUser = errors.New("invalid user payload")

// User is the profile record returned by the auth endpoints and persisted
// locally as the session record. Fields the client does not model are kept
// verbatim in Extra so the server's own profile shape survives a
// load/save/update round trip.
type User struct {
	Email       string
	Name        string
	Preferences []string

	// Extra holds every profile field the client does not interpret.
	Extra map[string]json.RawMessage
}

// UnmarshalJSON decodes a user object, failing closed: a payload without a
// non-empty string email, or with a wrongly-typed known field, is rejected
// rather than passed through to storage and display.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}

	var out User

	emailRaw, ok := raw["email"]
	if !ok {
		return fmt.Errorf("%w: missing email", ErrInvalidUser)
	}
	if err := json.Unmarshal(emailRaw, &out.Email); err != nil || out.Email == "" {
		return fmt.Errorf("%w: email must be a non-empty string", ErrInvalidUser)
	}
	delete(raw, "email")

	if nameRaw, ok := raw["name"]; ok {
		if err := json.Unmarshal(nameRaw, &out.Name); err != nil {
			return fmt.Errorf("%w: name must be a string", ErrInvalidUser)
		}
		delete(raw, "name")
	}

	if prefsRaw, ok := raw["preferences"]; ok {
		if err := json.Unmarshal(prefsRaw, &out.Preferences); err != nil {
			return fmt.Errorf("%w: preferences must be a string array", ErrInvalidUser)
		}
		delete(raw, "preferences")
	}

	if len(raw) > 0 {
		out.Extra = raw
	}

	*u = out
	return nil
}

// MarshalJSON re-emits the known fields alongside everything captured in
// Extra. Known fields win on key collisions.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(u.Extra)+3)
	for k, v := range u.Extra {
		out[k] = v
	}

	emailRaw, err := json.Marshal(u.Email)
	if err != nil {
		return nil, err
	}
	out["email"] = emailRaw

	if u.Name != "" {
		nameRaw, err := json.Marshal(u.Name)
		if err != nil {
			return nil, err
		}
		out["name"] = nameRaw
	}

	if u.Preferences != nil {
		prefsRaw, err := json.Marshal(u.Preferences)
		if err != nil {
			return nil, err
		}
		out["preferences"] = prefsRaw
	}

	return json.Marshal(out)
}
