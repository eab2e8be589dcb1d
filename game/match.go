package game

import (
	"fmt"
)

// Simulate runs one match of the given number of rounds between two
// strategies and returns their cumulative scores. Both strategies are
// reset first. Within a round the two decisions are simultaneous: each
// side decides from the histories as they existed at the start of the
// round, so neither observes the other's current move.
//
// Simulateは2つの戦略の間で指定ラウンド数の試合を1回実行し、両者の累計得点を返します。
// 両戦略は最初にリセットされます。ラウンド内の2つの決定は同時扱いであり、
// どちらもそのラウンドの相手の手を観測できません。
func Simulate(a, b Strategy, rounds int) (int, int, error) {
	if a == nil || b == nil {
		return 0, 0, fmt.Errorf("%w", ErrNilStrategy)
	}

	if rounds < 1 {
		return 0, 0, fmt.Errorf("%w: rounds = %d", ErrInvalidRounds, rounds)
	}

	a.Reset()
	b.Reset()

	historyA := make(History, 0, rounds)
	historyB := make(History, 0, rounds)
	scoreA, scoreB := 0, 0

	for i := 0; i < rounds; i++ {
		actionA := a.Decide(historyA, historyB)
		actionB := b.Decide(historyB, historyA)

		payoffA, payoffB := Payoff(actionA, actionB)
		scoreA += payoffA
		scoreB += payoffB

		// 2つの決定が出揃ってから、両履歴に同時に追記する
		historyA = append(historyA, actionA)
		historyB = append(historyB, actionB)
	}
	return scoreA, scoreB, nil
}
