package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/2bndy5/mk-pass/internal/crypto"
	"github.com/2bndy5/mk-pass/internal/model"
	"github.com/2bndy5/mk-pass/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrProfileNameTaken = errors.New("profile name already taken")
)

// ProfileService manages saved requirement profiles. Requirements are
// validated before they are stored, so a stored profile always generates.
type ProfileService struct {
	repo      *repository.ProfileRepository
	generator *GeneratorService
}

// NewProfileService creates a new ProfileService.
func NewProfileService(repo *repository.ProfileRepository, generator *GeneratorService) *ProfileService {
	return &ProfileService{repo: repo, generator: generator}
}

// CreateProfile stores a new profile for the account.
func (s *ProfileService) CreateProfile(ctx context.Context, accountID int64, req model.ProfileRequest) (model.ProfileResponse, error) {
	reqs, err := s.profileRequirements(req)
	if err != nil {
		return model.ProfileResponse{}, err
	}

	p := newProfile(accountID, uuid.NewString(), req.Name, reqs)
	if err := s.repo.Create(ctx, &p); err != nil {
		return model.ProfileResponse{}, translateProfileErr(err)
	}
	return toProfileResponse(p), nil
}

// UpdateProfile replaces the name and requirements of a profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, accountID int64, profileID string, req model.ProfileRequest) (model.ProfileResponse, error) {
	reqs, err := s.profileRequirements(req)
	if err != nil {
		return model.ProfileResponse{}, err
	}

	p := newProfile(accountID, profileID, req.Name, reqs)
	if err := s.repo.Update(ctx, &p); err != nil {
		return model.ProfileResponse{}, translateProfileErr(err)
	}

	stored, err := s.repo.Get(ctx, accountID, profileID)
	if err != nil {
		return model.ProfileResponse{}, translateProfileErr(err)
	}
	return toProfileResponse(*stored), nil
}

// DeleteProfile removes a profile.
func (s *ProfileService) DeleteProfile(ctx context.Context, accountID int64, profileID string) error {
	return translateProfileErr(s.repo.Delete(ctx, accountID, profileID))
}

// ListProfiles returns all profiles of an account.
func (s *ProfileService) ListProfiles(ctx context.Context, accountID int64) ([]model.ProfileResponse, error) {
	profiles, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return profilesToResponse(profiles), nil
}

// GenerateFromProfile produces passwords from a stored profile.
func (s *ProfileService) GenerateFromProfile(ctx context.Context, accountID int64, profileID string, req model.ProfileGenerateRequest) (model.GenerateResponse, error) {
	if err := model.Validate(req); err != nil {
		return model.GenerateResponse{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	p, err := s.repo.Get(ctx, accountID, profileID)
	if err != nil {
		return model.GenerateResponse{}, translateProfileErr(err)
	}

	reqs := profileToRequirements(*p)
	passwords, err := s.generator.GenerateFrom(reqs, req.Count)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return model.GenerateResponse{Passwords: passwords, Requirements: toModel(reqs)}, nil
}

// profileRequirements validates a profile request and returns the clamped
// requirements, rejecting ones the generator could never satisfy.
func (s *ProfileService) profileRequirements(req model.ProfileRequest) (crypto.Requirements, error) {
	if err := model.Validate(req); err != nil {
		return crypto.Requirements{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	reqs := s.generator.normalize(resolve(req.Length, req.Numbers, req.Specials, req.AllowRepeats, req.FirstIsLetter))
	if limit := s.generator.limits.MaxLength; limit > 0 && reqs.Length > limit {
		return crypto.Requirements{}, fmt.Errorf("%w: %d requested, at most %d", ErrLengthTooLong, reqs.Length, limit)
	}
	if err := reqs.Check(); err != nil {
		return crypto.Requirements{}, err
	}
	return reqs, nil
}

func newProfile(accountID int64, profileID, name string, r crypto.Requirements) model.Profile {
	return model.Profile{
		AccountID:     accountID,
		ProfileID:     profileID,
		Name:          name,
		Length:        r.Length,
		Numbers:       r.Numbers,
		Specials:      r.Specials,
		AllowRepeats:  r.AllowRepeats,
		FirstIsLetter: r.FirstIsLetter,
	}
}

func profileToRequirements(p model.Profile) crypto.Requirements {
	return crypto.Requirements{
		Length:        p.Length,
		Numbers:       p.Numbers,
		Specials:      p.Specials,
		AllowRepeats:  p.AllowRepeats,
		FirstIsLetter: p.FirstIsLetter,
	}
}

func toProfileResponse(p model.Profile) model.ProfileResponse {
	return model.ProfileResponse{
		ProfileID:    p.ProfileID,
		Name:         p.Name,
		Requirements: toModel(profileToRequirements(p)),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// profilesToResponse converts stored profiles to responses, never returning nil.
func profilesToResponse(profiles []model.Profile) []model.ProfileResponse {
	result := make([]model.ProfileResponse, len(profiles))
	for i, p := range profiles {
		result[i] = toProfileResponse(p)
	}
	return result
}

func translateProfileErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		return ErrProfileNotFound
	case errors.Is(err, repository.ErrDuplicateProfileName):
		return ErrProfileNameTaken
	}
	return err
}
