package store

import (
	"database/sql"
	"encoding/json"

	"github.com/creatorhub/creatorhub-be/internal/models"
)

// ProfileStore defines the persistence interface for creator profiles.
type ProfileStore interface {
	// GetByCreatorID retrieves the profile belonging to a creator.
	GetByCreatorID(creatorID string) (models.Profile, error)
	// List retrieves all profiles, newest first.
	List() ([]models.Profile, error)
	// Upsert inserts the profile, or updates it if the creator already has one.
	Upsert(profile models.Profile) (models.Profile, error)
	// Delete removes the profile belonging to a creator.
	Delete(creatorID string) error
}

// SQLProfileStore is the SQLite-backed ProfileStore.
type SQLProfileStore struct {
	db *sql.DB
}

// NewProfileStore creates a new SQLProfileStore.
func NewProfileStore(db *sql.DB) *SQLProfileStore {
	return &SQLProfileStore{db: db}
}

const profileSelect = `
	SELECT p.id, p.creator_id, c.name, COALESCE(c.avatar, ''),
	       COALESCE(p.company, ''), COALESCE(p.website, ''), COALESCE(p.location, ''),
	       COALESCE(p.bio, ''), p.status, p.skills_json, p.social_json,
	       p.created_at, p.updated_at
	FROM profiles p
	JOIN creators c ON c.id = p.creator_id`

// GetByCreatorID retrieves the profile for a creator, joined with the
// creator's name and avatar.
func (s *SQLProfileStore) GetByCreatorID(creatorID string) (models.Profile, error) {
	row := s.db.QueryRow(profileSelect+" WHERE p.creator_id = ?", creatorID)
	profile, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return models.Profile{}, ErrNotFound
	}
	return profile, err
}

// List retrieves all profiles with creator name and avatar, newest first.
func (s *SQLProfileStore) List() ([]models.Profile, error) {
	rows, err := s.db.Query(profileSelect + " ORDER BY p.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// Upsert inserts or replaces the profile for a creator. The ID and creation
// time of an existing row are preserved.
func (s *SQLProfileStore) Upsert(profile models.Profile) (models.Profile, error) {
	skillsJSON, err := json.Marshal(profile.Skills)
	if err != nil {
		return models.Profile{}, err
	}
	socialJSON, err := json.Marshal(profile.Social)
	if err != nil {
		return models.Profile{}, err
	}

	stmt, err := s.db.Prepare(`
		INSERT INTO profiles (id, creator_id, company, website, location, bio, status, skills_json, social_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(creator_id) DO UPDATE SET
			company = excluded.company,
			website = excluded.website,
			location = excluded.location,
			bio = excluded.bio,
			status = excluded.status,
			skills_json = excluded.skills_json,
			social_json = excluded.social_json,
			updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return models.Profile{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(profile.ID, profile.CreatorID, profile.Company, profile.Website,
		profile.Location, profile.Bio, profile.Status, string(skillsJSON), string(socialJSON))
	if err != nil {
		return models.Profile{}, err
	}

	return s.GetByCreatorID(profile.CreatorID)
}

// Delete removes the profile belonging to a creator.
func (s *SQLProfileStore) Delete(creatorID string) error {
	_, err := s.db.Exec("DELETE FROM profiles WHERE creator_id = ?", creatorID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var profile models.Profile
	var skillsJSON, socialJSON sql.NullString
	err := row.Scan(&profile.ID, &profile.CreatorID, &profile.CreatorName, &profile.CreatorAvatar,
		&profile.Company, &profile.Website, &profile.Location, &profile.Bio, &profile.Status,
		&skillsJSON, &socialJSON, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return models.Profile{}, err
	}
	if skillsJSON.Valid && skillsJSON.String != "" {
		if err := json.Unmarshal([]byte(skillsJSON.String), &profile.Skills); err != nil {
			return models.Profile{}, err
		}
	}
	if socialJSON.Valid && socialJSON.String != "" {
		if err := json.Unmarshal([]byte(socialJSON.String), &profile.Social); err != nil {
			return models.Profile{}, err
		}
	}
	return profile, nil
}
