package severity

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", Debug, false},
		{"DEBUG", Debug, false},
		{"info", Info, false},
		{"warn", Warning, false},
		{"warning", Warning, false},
		{"error", Error, false},
		{"critical", Critical, false},
		{"fatal", Critical, false},
		{"  INFO  ", Info, false},
		{"notset", NotSet, true},
		{"verbose", NotSet, true},
		{"", NotSet, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLevel) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidLevel", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if level != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestOrdering(t *testing.T) {
	levels := All()
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Errorf("expected %v < %v", levels[i-1], levels[i])
		}
	}
}

func TestAliases(t *testing.T) {
	if Warn != Warning {
		t.Error("expected Warn to equal Warning")
	}
	if Fatal != Critical {
		t.Error("expected Fatal to equal Critical")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{Debug, "DEBUG"},
		{Info, "INFO"},
		{Warning, "WARNING"},
		{Error, "ERROR"},
		{Critical, "CRITICAL"},
		{NotSet, "NOTSET"},
		{Level(99), "LEVEL(99)"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	for _, l := range All() {
		if err := l.Validate(); err != nil {
			t.Errorf("Validate(%v) unexpected error: %v", l, err)
		}
	}
	for _, l := range []Level{NotSet, Level(7), Level(60)} {
		if err := l.Validate(); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("Validate(%d) = %v, want ErrInvalidLevel", int(l), err)
		}
	}
}
