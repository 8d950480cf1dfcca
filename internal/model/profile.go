package model

import "time"

// Profile is a named, saved set of password requirements owned by an account.
type Profile struct {
	ID            int64
	AccountID     int64
	ProfileID     string
	Name          string
	Length        int
	Numbers       int
	Specials      int
	AllowRepeats  bool
	FirstIsLetter bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProfileRequest creates or replaces a profile. Omitted requirement fields take defaults.
type ProfileRequest struct {
	Name          string `json:"name" validate:"required,max=64"`
	Length        *int   `json:"length" validate:"omitempty,gte=1"`
	Numbers       *int   `json:"numbers" validate:"omitempty,gte=0"`
	Specials      *int   `json:"specials" validate:"omitempty,gte=0"`
	AllowRepeats  bool   `json:"allow_repeats"`
	FirstIsLetter *bool  `json:"first_is_letter"`
}

// ProfileResponse represents a stored profile.
type ProfileResponse struct {
	ProfileID    string       `json:"profile_id"`
	Name         string       `json:"name"`
	Requirements Requirements `json:"requirements"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ProfileGenerateRequest asks for passwords built from a saved profile.
type ProfileGenerateRequest struct {
	Count int `json:"count" validate:"gte=0"`
}
