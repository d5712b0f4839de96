package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateTypeKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "card", false},
		{"dotted", "cell.large", false},
		{"with space inside", "big card", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 200), true},
		{"control char", "card\x01", true},
		{"newline", "card\n", true},
		{"leading space", " card", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTypeKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTypeKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateItemSize(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"regular", 100, 40, false},
		{"zero", 0, 0, false},
		{"negative width", -1, 40, true},
		{"negative height", 10, -0.5, true},
		{"nan", math.NaN(), 1, true},
		{"inf", 1, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemSize(3, tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateItemSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSize) {
				t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeInvalidSize)
			}
		})
	}
}

func TestValidateSpacing(t *testing.T) {
	if err := ValidateSpacing(0); err != nil {
		t.Errorf("ValidateSpacing(0) error = %v", err)
	}
	if err := ValidateSpacing(12.5); err != nil {
		t.Errorf("ValidateSpacing(12.5) error = %v", err)
	}

	err := ValidateSpacing(-4)
	if err == nil {
		t.Fatal("ValidateSpacing(-4) should fail")
	}
	if !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeInvalidConfig)
	}
}

func TestValidateContentExtent(t *testing.T) {
	tests := []struct {
		name    string
		extent  float64
		wantErr bool
	}{
		{"default", 50000, false},
		{"zero", 0, true},
		{"negative", -10, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContentExtent(tt.extent)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContentExtent(%v) error = %v, wantErr %v", tt.extent, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "scenarios/basic.toml", false},
		{"absolute", "/tmp/trace.json", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 600), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
