// Package game defines the primitives of the iterated prisoner's dilemma:
// actions, move histories, the payoff rule and the strategy contract.
//
// Package game は繰り返し囚人のジレンマの基本要素（行動・履歴・利得・戦略契約）を定義します。
package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAction = errors.New("Actionエラー: 不正な値です")
	ErrInvalidRounds = errors.New("Roundsエラー: 1以上の正の整数である必要があります")
	ErrNilStrategy   = errors.New("Strategyエラー: nilです")
)

// Action is one move of a single round: cooperate or betray.
//
// Actionは1ラウンドにおける1人の手（協調・裏切り）を表します。
type Action int

const (
	Cooperate Action = iota
	Betray
)

func (a Action) String() string {
	switch a {
	case Cooperate:
		return "Cooperate"
	case Betray:
		return "Betray"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

func (a Action) Validate() error {
	if a != Cooperate && a != Betray {
		return fmt.Errorf("%w: %d", ErrInvalidAction, int(a))
	}
	return nil
}

// Payoff values of the standard prisoner's dilemma (T=5, R=3, P=1, S=0).
const (
	TemptationPayoff = 5
	RewardPayoff     = 3
	PunishmentPayoff = 1
	SuckerPayoff     = 0
)

// Payoff returns the scores of both sides for one simultaneous pair of actions.
// The first return value belongs to the side that played a.
//
// Payoffは同時に出された1組の行動に対する両者の得点を返します。
// 第1戻り値は a を出した側の得点です。
func Payoff(a, b Action) (int, int) {
	switch {
	case a == Cooperate && b == Cooperate:
		return RewardPayoff, RewardPayoff
	case a == Cooperate && b == Betray:
		return SuckerPayoff, TemptationPayoff
	case a == Betray && b == Cooperate:
		return TemptationPayoff, SuckerPayoff
	default:
		return PunishmentPayoff, PunishmentPayoff
	}
}

// History is the ordered sequence of actions one side has played so far
// in the current match. Strategies receive it as a read-only view.
//
// Historyは現在の試合でその側がこれまでに出した行動の列です。
// 戦略には読み取り専用のビューとして渡されます。
type History []Action

// Last returns the most recent action. ok is false when the history is empty.
func (h History) Last() (Action, bool) {
	if len(h) == 0 {
		return Cooperate, false
	}
	return h[len(h)-1], true
}

// LastN returns a view of the most recent n actions (fewer when the
// history is shorter), oldest first.
func (h History) LastN(n int) History {
	if n >= len(h) {
		return h
	}
	return h[len(h)-n:]
}

func (h History) Count(a Action) int {
	c := 0
	for _, v := range h {
		if v == a {
			c++
		}
	}
	return c
}

// CooperationRate returns the fraction of cooperative moves.
// 空の履歴に対しては0を返す。
func (h History) CooperationRate() float32 {
	if len(h) == 0 {
		return 0.0
	}
	return float32(h.Count(Cooperate)) / float32(len(h))
}

// Strategy is the uniform decision contract every catalogue entry satisfies.
// Decide is called once per round with the two histories as they exist at
// the start of the round (always of equal length) and returns the action
// to play. Reset restores the initial state, after which the strategy must
// be behaviorally indistinguishable from a freshly constructed instance.
//
// Strategyは全戦略が満たす統一された意思決定契約です。
// Decideはラウンド毎に1回、ラウンド開始時点の両履歴（常に同じ長さ）を受け取り、
// 出す行動を返します。Resetは初期状態に戻します。
type Strategy interface {
	Decide(self, opp History) Action
	Reset()
}
