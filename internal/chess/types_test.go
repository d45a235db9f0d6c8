package chess

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/gochess/internal/errors"
)

func TestColor(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite is not an involution over the two colours")
	}
	if White.Code() != 'w' || Black.Code() != 'b' {
		t.Errorf("colour codes: got %c/%c, want w/b", White.Code(), Black.Code())
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("colour names: got %s/%s", White, Black)
	}
}

func TestParseColor(t *testing.T) {
	for _, tt := range []struct {
		code byte
		want Color
	}{
		{'w', White},
		{'b', Black},
	} {
		got, err := ParseColor(tt.code)
		if err != nil {
			t.Errorf("ParseColor(%c) error: %v", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%c) = %v, want %v", tt.code, got, tt.want)
		}
	}
	if _, err := ParseColor('x'); !stderrors.Is(err, errors.ErrInvalidPiece) {
		t.Errorf("ParseColor('x') error = %v, want ErrInvalidPiece", err)
	}
}

func TestPieceEncoding(t *testing.T) {
	tests := []struct {
		colour Color
		typ    PieceType
		code   string
	}{
		{White, Pawn, "wP"},
		{White, King, "wK"},
		{Black, Knight, "bN"},
		{Black, Queen, "bQ"},
		{Black, Rook, "bR"},
		{White, Bishop, "wB"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			p := NewPiece(tt.colour, tt.typ)
			if p.Color() != tt.colour {
				t.Errorf("Color() = %v, want %v", p.Color(), tt.colour)
			}
			if p.Type() != tt.typ {
				t.Errorf("Type() = %v, want %v", p.Type(), tt.typ)
			}
			if p.Code() != tt.code {
				t.Errorf("Code() = %q, want %q", p.Code(), tt.code)
			}
			back, err := ParsePiece(tt.code)
			if err != nil {
				t.Fatalf("ParsePiece(%q) error: %v", tt.code, err)
			}
			if back != p {
				t.Errorf("ParsePiece(%q) = %v, want %v", tt.code, back, p)
			}
		})
	}
}

func TestNoPiece(t *testing.T) {
	if NoPiece.Code() != "" {
		t.Errorf("NoPiece.Code() = %q, want empty", NoPiece.Code())
	}
	if NoPiece.Type() != NoPieceType {
		t.Errorf("NoPiece.Type() = %v, want NoPieceType", NoPiece.Type())
	}
	p, err := ParsePiece("")
	if err != nil || p != NoPiece {
		t.Errorf("ParsePiece(\"\") = %v, %v, want NoPiece, nil", p, err)
	}
}

func TestParsePieceErrors(t *testing.T) {
	for _, code := range []string{"w", "wX", "xP", "wPP"} {
		if _, err := ParsePiece(code); !stderrors.Is(err, errors.ErrInvalidPiece) {
			t.Errorf("ParsePiece(%q) error = %v, want ErrInvalidPiece", code, err)
		}
	}
}

func TestPieceTypeLetters(t *testing.T) {
	letters := map[PieceType]byte{
		Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K',
	}
	for typ, letter := range letters {
		if typ.Letter() != letter {
			t.Errorf("%v.Letter() = %c, want %c", typ, typ.Letter(), letter)
		}
		back, err := ParsePieceType(letter)
		if err != nil || back != typ {
			t.Errorf("ParsePieceType(%c) = %v, %v, want %v, nil", letter, back, err, typ)
		}
	}
	if _, err := ParsePieceType('Z'); !stderrors.Is(err, errors.ErrInvalidPiece) {
		t.Errorf("ParsePieceType('Z') error = %v, want ErrInvalidPiece", err)
	}
}
