package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/candidatehub/server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

// ProfileRepository reads candidate profiles from the profiles table. The
// jsonb skills column is decoded into a typed SkillSet at this boundary so
// everything downstream works on a typed shape.
type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// All returns every stored profile in insertion order.
func (r *ProfileRepository) All(ctx context.Context) ([]model.Profile, error) {
	query := `SELECT id, name, email, contact, education, experience, skills, skills_score, created_at
			  FROM profiles ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		var profile model.Profile
		var skills []byte
		err := rows.Scan(
			&profile.ID, &profile.Name, &profile.Email, &profile.Contact,
			&profile.Education, &profile.Experience, &skills, &profile.SkillsScore,
			&profile.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}

		if len(skills) > 0 {
			if err := json.Unmarshal(skills, &profile.Skills); err != nil {
				return nil, fmt.Errorf("failed to decode skills for profile %s: %w", profile.ID, err)
			}
		}

		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	return profiles, nil
}

// Count returns the number of stored profiles.
func (r *ProfileRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	return count, nil
}

// Create stores a profile. Used by the upstream resume parser and seeds;
// the reporting side never writes profiles.
func (r *ProfileRepository) Create(ctx context.Context, profile model.Profile) (model.Profile, error) {
	skills, err := json.Marshal(profile.Skills)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to encode skills: %w", err)
	}

	query := `INSERT INTO profiles (id, name, email, contact, education, experience, skills, skills_score)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, name, email, contact, education, experience, skills_score, created_at`

	var saved model.Profile
	err = r.db.QueryRow(ctx, query,
		profile.ID, profile.Name, profile.Email, profile.Contact,
		profile.Education, profile.Experience, skills, profile.SkillsScore,
	).Scan(
		&saved.ID, &saved.Name, &saved.Email, &saved.Contact,
		&saved.Education, &saved.Experience, &saved.SkillsScore, &saved.CreatedAt,
	)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	saved.Skills = profile.Skills

	return saved, nil
}
