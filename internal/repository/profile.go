package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/2bndy5/mk-pass/internal/model"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrDuplicateProfileName = errors.New("profile name already exists")
)

const profileColumns = `id, account_id, profile_id, name, length, numbers, specials,
	allow_repeats, first_is_letter, created_at, updated_at`

// ProfileRepository handles persistence of saved requirement profiles.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a profile and sets its generated row ID.
func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (account_id, profile_id, name, length, numbers, specials, allow_repeats, first_is_letter)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.AccountID, p.ProfileID, p.Name, p.Length, p.Numbers, p.Specials, p.AllowRepeats, p.FirstIsLetter,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateProfileName
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Update replaces the name and requirements of an existing profile.
func (r *ProfileRepository) Update(ctx context.Context, p *model.Profile) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET name = ?, length = ?, numbers = ?, specials = ?, allow_repeats = ?, first_is_letter = ?
		WHERE account_id = ? AND profile_id = ?`,
		p.Name, p.Length, p.Numbers, p.Specials, p.AllowRepeats, p.FirstIsLetter,
		p.AccountID, p.ProfileID,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateProfileName
		}
		return err
	}
	return expectAffected(result)
}

// Delete removes a profile.
func (r *ProfileRepository) Delete(ctx context.Context, accountID int64, profileID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM profiles WHERE account_id = ? AND profile_id = ?`, accountID, profileID)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

// Get retrieves a profile by its owner and public ID.
func (r *ProfileRepository) Get(ctx context.Context, accountID int64, profileID string) (*model.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE account_id = ? AND profile_id = ?`, accountID, profileID)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListByAccount retrieves all profiles of an account ordered by name.
func (r *ProfileRepository) ListByAccount(ctx context.Context, accountID int64) ([]model.Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE account_id = ? ORDER BY name ASC`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(s scanner) (*model.Profile, error) {
	p := &model.Profile{}
	err := s.Scan(
		&p.ID, &p.AccountID, &p.ProfileID, &p.Name, &p.Length, &p.Numbers, &p.Specials,
		&p.AllowRepeats, &p.FirstIsLetter, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}
