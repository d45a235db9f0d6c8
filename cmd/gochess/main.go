// Command gochess plays a game of chess in the terminal against the
// built-in engine. All rules and search live under internal/; this
// driver only binds stdin coordinates to move requests and prints
// position snapshots.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/config"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/game"
	"github.com/lgbarn/gochess/internal/logging"
	"github.com/lgbarn/gochess/internal/search"
	"github.com/lgbarn/gochess/internal/session"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		level      = flag.Int("level", 0, "difficulty level 1-5, overrides config")
		budgetMS   = flag.Int("budget", 0, "engine budget per move in milliseconds, overrides config")
		color      = flag.String("color", "", "human side, w or b, overrides config")
		fen        = flag.String("fen", "", "starting position FEN")
		perftDepth = flag.Int("perft", 0, "print perft node counts to this depth and exit")
		seed       = flag.Int64("seed", 0, "random seed for reproducible engine play")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *level != 0 {
		cfg.Level = search.ClampLevel(*level)
	}
	if *budgetMS > 0 {
		cfg.BudgetMillis = *budgetMS
	}
	if *color != "" {
		cfg.PlayerColor = *color
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	if *perftDepth > 0 {
		if err := runPerft(*fen, *perftDepth); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := runGame(cfg, *fen, *seed, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runPerft prints legal-move tree node counts from the given position.
func runPerft(fen string, depth int) error {
	pos := engine.NewInitialPosition()
	if fen != "" {
		var err error
		pos, err = engine.ParseFEN(fen)
		if err != nil {
			return err
		}
	}
	for d := 1; d <= depth; d++ {
		fmt.Printf("perft(%d) = %d\n", d, engine.Perft(pos.Copy(), d))
	}
	return nil
}

// runGame drives one interactive game to its terminal result.
func runGame(cfg config.Config, fen string, seed int64, log *zap.Logger) error {
	opts := []search.Option{search.WithLogger(log)}
	if seed != 0 {
		opts = append(opts, search.WithRandSource(rand.NewSource(seed)))
	}
	mgr := session.NewManager(search.New(opts...),
		session.WithWorkers(cfg.Workers),
		session.WithLogger(log),
	)
	defer mgr.Close()

	human := cfg.Color()
	var id = mgr.Create(human)
	if fen != "" {
		var err error
		mgr.Remove(id)
		id, err = mgr.CreateFromFEN(fen, human)
		if err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		snap, err := mgr.Snapshot(id)
		if err != nil {
			return err
		}
		printBoard(snap)
		if snap.Result != nil {
			announce(snap)
			return nil
		}

		if snap.ActiveColor == cfg.PlayerColor {
			fmt.Print("your move (e.g. e2e4, e7e8q, quit)> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			text := strings.TrimSpace(scanner.Text())
			if text == "quit" || text == "exit" {
				return nil
			}
			from, to, promotion, err := parseCoordMove(text)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if _, err := mgr.Move(id, human, from, to, promotion); err != nil {
				fmt.Println("rejected:", err)
			}
			continue
		}

		ch, err := mgr.RequestEngineMove(id, cfg.Level, cfg.Budget())
		if err != nil {
			return err
		}
		res := <-ch
		if res.Err != nil {
			return res.Err
		}
		fmt.Printf("engine plays %s\n", res.Move.Coord())
	}
}

// parseCoordMove splits a coordinate move string such as "e2e4" or
// "e7e8q" into its squares and optional promotion piece.
func parseCoordMove(text string) (from, to chess.Square, promotion chess.PieceType, err error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.NoSquare, chess.NoSquare, chess.NoPieceType,
			fmt.Errorf("expected a coordinate move such as e2e4, got %q", text)
	}
	if from, err = chess.ParseSquare(text[:2]); err != nil {
		return
	}
	if to, err = chess.ParseSquare(text[2:4]); err != nil {
		return
	}
	if len(text) == 5 {
		letter := text[4]
		if letter >= 'a' && letter <= 'z' {
			letter -= 'a' - 'A'
		}
		promotion, err = chess.ParsePieceType(letter)
	}
	return
}

// printBoard renders the snapshot as plain text, White at the bottom.
func printBoard(snap game.Snapshot) {
	fmt.Println()
	for rank := 8; rank >= 1; rank-- {
		fmt.Printf("%d ", rank)
		for file := 0; file < 8; file++ {
			coord := string([]byte{byte('a' + file), byte('0' + rank)})
			code := snap.Squares[coord]
			switch {
			case code == "":
				fmt.Print(" .")
			case code[0] == 'b':
				fmt.Printf(" %c", code[1]+('a'-'A'))
			default:
				fmt.Printf(" %c", code[1])
			}
		}
		fmt.Println()
	}
	fmt.Println("   a b c d e f g h")
	if len(snap.History) > 0 {
		fmt.Println("last:", snap.History[len(snap.History)-1])
	}
}

// announce prints the terminal result.
func announce(snap game.Snapshot) {
	switch snap.Result.Outcome {
	case "checkmate":
		winner := "White"
		if snap.Result.Winner == "b" {
			winner = "Black"
		}
		fmt.Printf("checkmate, %s wins\n", winner)
	case "stalemate":
		fmt.Println("stalemate")
	default:
		fmt.Printf("draw: %s\n", snap.Result.Reason)
	}
}
