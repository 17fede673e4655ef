// File: internal/repository/token.go
package repository

import (
	"context"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"
)

// ListUserTokens returns every access token owned by userID.
func ListUserTokens(ctx context.Context, db database.DB, userID int) ([]model.AccessToken, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, created_at
		 FROM oauth_access_tokens WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUserTokens: %w", err)
	}
	defer rows.Close()

	var tokens []model.AccessToken
	for rows.Next() {
		var t model.AccessToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListUserTokens: %w", err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUserTokens: %w", err)
	}
	return tokens, nil
}

// DeleteToken removes a single access token row.
func DeleteToken(ctx context.Context, db database.DB, tokenID string) error {
	if _, err := db.Exec(ctx,
		`DELETE FROM oauth_access_tokens WHERE id = $1`,
		tokenID,
	); err != nil {
		return fmt.Errorf("DeleteToken: %w", err)
	}
	return nil
}
