package domain

import "encoding/json"

// User is a single account: unique username, bcrypt password hash, and the
// opaque data blob the client owns. The JSON tags double as the on-disk
// layout of the flat-file store.
type User struct {
	Username     string          `json:"username"`
	PasswordHash string          `json:"passwordHash"`
	Data         json.RawMessage `json:"data"`
}
