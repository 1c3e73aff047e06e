package dot

import (
	"errors"
	"testing"
)

func TestNewID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "Simple", in: "hello"},
		{name: "Underscore", in: "_"},
		{name: "LeadingUnderscore", in: "_private"},
		{name: "DigitsAfterFirst", in: "N0"},
		{name: "MixedCase", in: "GraphName2"},
		{name: "Empty", in: "", wantErr: true},
		{name: "LeadingDigit", in: "0start", wantErr: true},
		{name: "Space", in: "has space", wantErr: true},
		{name: "Brackets", in: "Weird { struct : ure } !!!", wantErr: true},
		{name: "Dash", in: "kebab-case", wantErr: true},
		{name: "Quote", in: `say"what`, wantErr: true},
		{name: "NonASCII", in: "gråf", wantErr: true},
		{name: "TrailingSemicolon", in: "N0;", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewID(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Fatalf("NewID(%q) error = %v, want ErrInvalidID", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewID(%q) error = %v", tt.in, err)
			}
			if got := id.String(); got != tt.in {
				t.Errorf("String() = %q, want %q", got, tt.in)
			}
		})
	}
}

func TestMustID(t *testing.T) {
	if got := MustID("valid_id").String(); got != "valid_id" {
		t.Errorf("MustID(valid_id) = %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustID with invalid input did not panic")
		}
	}()
	MustID("not valid")
}

func TestZeroID(t *testing.T) {
	var id ID
	if got := id.String(); got != "" {
		t.Errorf("zero ID String() = %q, want empty", got)
	}
}
