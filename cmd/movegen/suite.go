package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mhalvorsen/movegen-go/internal/engine"
	"github.com/mhalvorsen/movegen-go/internal/errors"
	"github.com/mhalvorsen/movegen-go/internal/fen"
)

// Suite is a set of named positions with expected move counts.
type Suite struct {
	Positions []SuitePosition `yaml:"positions"`
}

// SuitePosition is one suite entry: a position and the pseudo-legal
// and legal move counts it must produce.
type SuitePosition struct {
	Name        string `yaml:"name"`
	FEN         string `yaml:"fen"`
	PseudoLegal int    `yaml:"pseudoLegal"`
	Legal       int    `yaml:"legal"`
}

// LoadSuite reads and parses a YAML suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, errors.Wrapf(err, "parsing suite %s", path)
	}
	return &suite, nil
}

// runSuite runs every suite position, writing one PASS/FAIL line per
// entry. Returns ErrSuiteFailed if any entry mismatched.
func runSuite(w io.Writer, path string, workers int) error {
	suite, err := LoadSuite(path)
	if err != nil {
		return err
	}

	failed := 0
	for _, sp := range suite.Positions {
		pos, err := fen.Decode(sp.FEN)
		if err != nil {
			fmt.Fprintf(w, "FAIL %s: %v\n", sp.Name, err)
			failed++
			continue
		}

		pseudo := engine.PseudoLegalMoves(pos)
		legal := engine.LegalMovesParallel(pos, pseudo, workers)

		if len(pseudo) != sp.PseudoLegal || len(legal) != sp.Legal {
			fmt.Fprintf(w, "FAIL %s: pseudo-legal %d (want %d), legal %d (want %d)\n",
				sp.Name, len(pseudo), sp.PseudoLegal, len(legal), sp.Legal)
			failed++
			continue
		}
		fmt.Fprintf(w, "PASS %s: pseudo-legal %d, legal %d\n", sp.Name, len(pseudo), len(legal))
	}

	if failed > 0 {
		return errors.Wrapf(errors.ErrSuiteFailed, "%d of %d positions", failed, len(suite.Positions))
	}
	return nil
}
