package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Profile represents a row in the profiles table.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	SkinType  string    `json:"skin_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListProfiles retrieves all user profiles.
func (db *DB) ListProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, COALESCE(email, ''), COALESCE(skin_type, ''), created_at, updated_at
		 FROM profiles ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.SkinType, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// GetProfile retrieves a profile by ID. Returns (nil, nil) when no row exists.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, COALESCE(email, ''), COALESCE(skin_type, ''), created_at, updated_at
		 FROM profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Email, &p.SkinType, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// CreateProfile inserts a new profile and returns its ID.
func (db *DB) CreateProfile(ctx context.Context, name, email, skinType string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (name, email, skin_type)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		 RETURNING id`,
		name, email, skinType,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return id, nil
}

// DeleteProfile removes a profile by ID.
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountProfiles returns the number of profile rows.
func (db *DB) CountProfiles(ctx context.Context) (int64, error) {
	var count int64
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}
