// movegen is a command-line driver for the move generation core. It
// decodes a position from FEN, prints the board, and lists the
// pseudo-legal and legal moves; with -suite it instead runs a YAML
// file of positions with expected move counts.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mhalvorsen/movegen-go/internal/engine"
	"github.com/mhalvorsen/movegen-go/internal/fen"
	"github.com/mhalvorsen/movegen-go/internal/output"
)

// demoFEN is a small pin position: the b2 pawn shields the white king
// from the d4 bishop, so the pawn pushes are pseudo-legal but not
// legal.
const demoFEN = "8/8/8/2k5/3b4/8/1P6/K7 w"

var (
	fenFlag   = flag.String("fen", demoFEN, "position to analyze: FEN placement plus side to move")
	suiteFlag = flag.String("suite", "", "YAML position suite to run instead of a single position")
	workers   = flag.Int("workers", 1, "worker count for the legality filter (1 = sequential)")
)

func main() {
	flag.Parse()

	if *suiteFlag != "" {
		if err := runSuite(os.Stdout, *suiteFlag, *workers); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := run(os.Stdout, *fenFlag, *workers); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run decodes one position and writes the board and both move lists.
func run(w io.Writer, fenStr string, workers int) error {
	pos, err := fen.Decode(fenStr)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Board:")
	if err := output.WriteBoard(w, pos); err != nil {
		return err
	}
	fmt.Fprintln(w)

	pseudo := engine.PseudoLegalMoves(pos)
	fmt.Fprintf(w, "Pseudo-legal moves for %v:\n", pos.SideToMove())
	if err := output.WriteMoveList(w, pseudo); err != nil {
		return err
	}
	fmt.Fprintln(w)

	legal := engine.LegalMovesParallel(pos, pseudo, workers)
	fmt.Fprintf(w, "Legal moves for %v:\n", pos.SideToMove())
	return output.WriteMoveList(w, legal)
}
