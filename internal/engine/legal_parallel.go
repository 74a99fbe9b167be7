package engine

import (
	"github.com/mhalvorsen/movegen-go/internal/chess"
	"github.com/mhalvorsen/movegen-go/internal/worker"
)

// LegalMovesParallel is LegalMoves with the per-candidate checks
// fanned out over a worker pool. Every check operates on its own copy
// of the position, so the candidates are fully independent. Output is
// identical to LegalMoves, including ordering.
func LegalMovesParallel(pos chess.Position, pseudo chess.MoveList, workers int) chess.MoveList {
	if workers <= 1 || len(pseudo) < 2 {
		return LegalMoves(pos, pseudo)
	}

	pool := worker.NewPool(workers, len(pseudo), func(item worker.Item) worker.Result {
		return worker.Result{
			Move:  item.Move,
			Index: item.Index,
			Legal: IsLegalMove(pos, item.Move),
		}
	})
	pool.Start()

	go func() {
		for i, mv := range pseudo {
			pool.Submit(worker.Item{Move: mv, Index: i})
		}
		pool.Close()
	}()

	verdicts := make([]bool, len(pseudo))
	for res := range pool.Results() {
		verdicts[res.Index] = res.Legal
	}

	var legal chess.MoveList
	for i, mv := range pseudo {
		if verdicts[i] {
			legal = append(legal, mv)
		}
	}
	return legal
}
