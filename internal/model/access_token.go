// File: internal/model/access_token.go
package model

import "time"

// AccessToken is a row in oauth_access_tokens. Tokens are issued by the
// external identity provider; this service only reads and revokes them.
type AccessToken struct {
	ID        string    `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
