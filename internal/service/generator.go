package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/2bndy5/mk-pass/internal/crypto"
	"github.com/2bndy5/mk-pass/internal/metrics"
	"github.com/2bndy5/mk-pass/internal/model"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrLengthTooLong  = errors.New("password length exceeds the allowed maximum")
	ErrCountTooLarge  = errors.New("too many passwords requested")
)

// Limits bounds what a single request may ask for.
type Limits struct {
	MaxLength int
	MaxCount  int
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	rng    io.Reader
	limits Limits
}

// NewGeneratorService creates a GeneratorService drawing randomness from rng.
// rng must be safe for concurrent use when the service is shared between
// requests; crypto/rand.Reader is.
func NewGeneratorService(rng io.Reader, limits Limits) *GeneratorService {
	return &GeneratorService{rng: rng, limits: limits}
}

// Generate produces one or more passwords for the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if err := model.Validate(req); err != nil {
		return model.GenerateResponse{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	reqs := resolve(req.Length, req.Numbers, req.Specials, req.AllowRepeats, req.FirstIsLetter)
	if !req.Raw {
		reqs = s.normalize(reqs)
	}

	passwords, err := s.GenerateFrom(reqs, req.Count)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Passwords:    passwords,
		Requirements: toModel(reqs),
	}, nil
}

// Validate returns the normalized form of the requested requirements.
func (s *GeneratorService) Validate(req model.GenerateRequest) (model.ValidateResponse, error) {
	if err := model.Validate(req); err != nil {
		return model.ValidateResponse{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	reqs := resolve(req.Length, req.Numbers, req.Specials, req.AllowRepeats, req.FirstIsLetter)
	validated := s.normalize(reqs)

	return model.ValidateResponse{
		Requirements: toModel(validated),
		Clamped:      validated != reqs,
	}, nil
}

// GenerateFrom produces count passwords (at least one) for reqs as given.
func (s *GeneratorService) GenerateFrom(reqs crypto.Requirements, count int) ([]string, error) {
	if count == 0 {
		count = 1
	}
	if s.limits.MaxCount > 0 && count > s.limits.MaxCount {
		return nil, fmt.Errorf("%w: %d requested, at most %d", ErrCountTooLarge, count, s.limits.MaxCount)
	}
	if s.limits.MaxLength > 0 && reqs.Length > s.limits.MaxLength {
		return nil, fmt.Errorf("%w: %d requested, at most %d", ErrLengthTooLong, reqs.Length, s.limits.MaxLength)
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := crypto.Generate(reqs, s.rng)
		if err != nil {
			metrics.PasswordsGenerated.WithLabelValues(resultLabel(err)).Inc()
			return nil, err
		}
		metrics.PasswordsGenerated.WithLabelValues(metrics.ResultOK).Inc()
		metrics.PasswordLength.Observe(float64(len(password)))
		passwords = append(passwords, password)
	}
	return passwords, nil
}

func (s *GeneratorService) normalize(reqs crypto.Requirements) crypto.Requirements {
	validated := reqs.Validate()
	if validated != reqs {
		metrics.RequirementsClamped.Inc()
	}
	return validated
}

// resolve fills omitted request fields with the defaults.
func resolve(length, numbers, specials *int, allowRepeats bool, firstIsLetter *bool) crypto.Requirements {
	reqs := crypto.DefaultRequirements()
	if length != nil {
		reqs.Length = *length
	}
	if numbers != nil {
		reqs.Numbers = *numbers
	}
	if specials != nil {
		reqs.Specials = *specials
	}
	reqs.AllowRepeats = allowRepeats
	reqs.FirstIsLetter = boolOrDefault(firstIsLetter, true)
	return reqs
}

func toModel(r crypto.Requirements) model.Requirements {
	return model.Requirements{
		Length:        r.Length,
		Numbers:       r.Numbers,
		Specials:      r.Specials,
		AllowRepeats:  r.AllowRepeats,
		FirstIsLetter: r.FirstIsLetter,
	}
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, crypto.ErrInvalidSpec):
		return metrics.ResultInvalidSpec
	case errors.Is(err, crypto.ErrInsufficientAlphabet):
		return metrics.ResultInsufficientAlphabet
	}
	return metrics.ResultError
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
