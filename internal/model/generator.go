package model

// GenerateRequest represents a password generation request.
// Pointer fields distinguish a missing value (nil -> default) from an explicit zero or false.
type GenerateRequest struct {
	Length        *int  `json:"length" validate:"omitempty,gte=1"`
	Numbers       *int  `json:"numbers" validate:"omitempty,gte=0"`
	Specials      *int  `json:"specials" validate:"omitempty,gte=0"`
	AllowRepeats  bool  `json:"allow_repeats"`
	FirstIsLetter *bool `json:"first_is_letter"`
	Count         int   `json:"count" validate:"gte=0"`
	// Raw skips clamping, so unsatisfiable requirements are reported as errors.
	Raw bool `json:"raw"`
}

// Requirements is the wire form of a password composition.
type Requirements struct {
	Length        int  `json:"length"`
	Numbers       int  `json:"numbers"`
	Specials      int  `json:"specials"`
	AllowRepeats  bool `json:"allow_repeats"`
	FirstIsLetter bool `json:"first_is_letter"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords    []string     `json:"passwords"`
	Requirements Requirements `json:"requirements"`
}

// ValidateResponse returns normalized requirements and whether any count was reduced.
type ValidateResponse struct {
	Requirements Requirements `json:"requirements"`
	Clamped      bool         `json:"clamped"`
}
