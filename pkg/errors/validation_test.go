package errors

import (
	"math"
	"testing"
)

func TestValidateProfileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "classic", false},
		{"valid with dash", "kuro-wide", false},
		{"valid with underscore", "kuro_2", false},

		{"empty", "", true},
		{"too long", "a" + string(make([]byte, 70)), true},
		{"uppercase", "Classic", true},
		{"leading dash", "-classic", true},
		{"space", "my profile", true},
		{"dot", "a.b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfileName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfileName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidProfile) {
				t.Errorf("ValidateProfileName(%q) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateThemeID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"stars", false},
		{"character-rain", false},
		{"", true},
		{"Stars", true},
		{"url(#x)", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateThemeID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateThemeID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		wantErr bool
	}{
		{"lower bound", 10, false},
		{"upper bound", 120, false},
		{"inside", 16, false},
		{"below", 9.9, true},
		{"above", 121, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange("font_size", tt.v, 10, 120)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRange(%v) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCacheControl(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"public", "public, max-age=3600, s-maxage=3600", false},
		{"no-cache", "no-cache, no-store, must-revalidate", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"header split", "public\r\nX-Evil: 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCacheControl(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCacheControl(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "svgbanner.toml", false},
		{"absolute", "/etc/svgbanner/config.toml", false},
		{"empty", "", true},
		{"null byte", "config\x00.toml", true},
		{"too long", string(make([]byte, 501)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfigPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfigPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
