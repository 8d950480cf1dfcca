package model

import "testing"

func TestValidate(t *testing.T) {
	zero, three := 0, 3

	tests := []struct {
		name    string
		v       any
		wantErr bool
	}{
		{"empty generate request", GenerateRequest{}, false},
		{"explicit zero numbers", GenerateRequest{Numbers: &zero}, false},
		{"explicit zero length", GenerateRequest{Length: &zero}, true},
		{"negative count", GenerateRequest{Count: -1}, true},
		{"profile without name", ProfileRequest{Length: &three}, true},
		{"profile name too long", ProfileRequest{Name: string(make([]byte, 65))}, true},
		{"profile", ProfileRequest{Name: "email"}, false},
		{"account", CreateAccountRequest{Email: "a@example.com", Password: "longenough"}, false},
		{"account bad email", CreateAccountRequest{Email: "a", Password: "longenough"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.v)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
