package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *chess.Position {
	pos, err := ParseFEN(InitialFEN)
	if err != nil {
		panic("engine: initial FEN failed to parse: " + err.Error())
	}
	return pos
}

// ParseFEN creates a position from a FEN string. Missing trailing
// fields default the same way lenient readers do: White to move, no
// castling, no en passant, zeroed clocks.
func ParseFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := &chess.Position{EnPassant: chess.NoSquare, FullmoveNumber: 1}

	if err := parsePlacement(pos, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}
	parseCastlingField(pos, parts)
	if err := parseEnPassantField(pos, parts); err != nil {
		return nil, err
	}
	parseClockFields(pos, parts)

	return pos, nil
}

// parsePlacement parses the piece placement field.
func parsePlacement(pos *chess.Position, placement string) error {
	rank, file := 7, 0
	for _, c := range placement {
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			if file > 7 || rank < 0 {
				return fmt.Errorf("placement out of bounds: %w", errors.ErrInvalidFEN)
			}
			t, err := chess.ParsePieceType(byte(unicode.ToUpper(c)))
			if err != nil {
				return fmt.Errorf("placement character %q: %w", c, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			pos.Set(chess.MakeSquare(file, rank), chess.NewPiece(colour, t))
			file++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ActiveColor = chess.White
	case "b":
		pos.ActiveColor = chess.Black
	default:
		return fmt.Errorf("side to move %q: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingField parses the castling availability field.
func parseCastlingField(pos *chess.Position, parts []string) {
	pos.Castling = chess.CastlingRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			pos.Castling.WhiteKingSide = true
		case 'Q':
			pos.Castling.WhiteQueenSide = true
		case 'k':
			pos.Castling.BlackKingSide = true
		case 'q':
			pos.Castling.BlackQueenSide = true
		}
	}
}

// parseEnPassantField parses the en passant target square field.
func parseEnPassantField(pos *chess.Position, parts []string) error {
	pos.EnPassant = chess.NoSquare
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant field %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	pos.EnPassant = sq
	return nil
}

// parseClockFields parses the halfmove clock and fullmove number.
func parseClockFields(pos *chess.Position, parts []string) {
	if len(parts) >= 5 {
		fmt.Sscanf(parts[4], "%d", &pos.HalfmoveClock)
	}
	if len(parts) >= 6 {
		fmt.Sscanf(parts[5], "%d", &pos.FullmoveNumber)
	}
}

// FormatFEN converts a position to its FEN string.
func FormatFEN(pos *chess.Position) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := pos.At(chess.MakeSquare(file, rank))
			if piece == chess.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := piece.Type().Letter()
			if piece.Color() == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteByte(pos.ActiveColor.Code())
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}
