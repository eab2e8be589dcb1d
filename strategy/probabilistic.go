package strategy

import (
	"math/rand"

	"github.com/chewxy/math32"
	omwrand "github.com/sw965/omw/math/rand"

	"github.com/sw965/axelrod/game"
	"github.com/sw965/axelrod/mathx"
)

// Grofman cooperates when both sides played the same move last round;
// otherwise it cooperates with probability 2/7.
//
// Grofmanは直前のラウンドで両者の手が同じなら協調し、
// 違う場合は確率2/7で協調します。
type Grofman struct {
	rng *rand.Rand
}

func NewGrofman(rng *rand.Rand) *Grofman {
	return &Grofman{rng: rng}
}

func (s *Grofman) Decide(self, opp game.History) game.Action {
	lastSelf, okSelf := self.Last()
	lastOpp, okOpp := opp.Last()
	if !okSelf || !okOpp {
		return game.Cooperate
	}

	if lastSelf == lastOpp {
		return game.Cooperate
	}

	if s.rng.Float64() < 2.0/7.0 {
		return game.Cooperate
	}
	return game.Betray
}

func (s *Grofman) Reset() {}

// Feld mirrors betrayals, but answers each cooperation with a cooperation
// probability k/(10+2k) where k counts the opponent's consecutive
// cooperations. The probability rises toward one half.
//
// Feldは裏切りには裏切りで応じ、協調には確率 k/(10+2k) で協調します
// （kは相手の連続協調回数）。確率は0.5に向かって漸近します。
type Feld struct {
	consecutiveCooperations int
	rng                     *rand.Rand
}

func NewFeld(rng *rand.Rand) *Feld {
	return &Feld{rng: rng}
}

func (s *Feld) Decide(_, opp game.History) game.Action {
	last, ok := opp.Last()
	if !ok {
		return game.Cooperate
	}

	if last == game.Betray {
		s.consecutiveCooperations = 0
		return game.Betray
	}

	s.consecutiveCooperations++
	k := float64(s.consecutiveCooperations)
	if s.rng.Float64() < k/(10.0+2.0*k) {
		return game.Cooperate
	}
	return game.Betray
}

func (s *Feld) Reset() {
	s.consecutiveCooperations = 0
}

// Joss mirrors betrayals and answers a cooperation with cooperation 90%
// of the time.
//
// Jossは裏切りには裏切りで応じ、協調には90%の確率で協調します。
type Joss struct {
	rng *rand.Rand
}

func NewJoss(rng *rand.Rand) *Joss {
	return &Joss{rng: rng}
}

func (s *Joss) Decide(_, opp game.History) game.Action {
	last, ok := opp.Last()
	if !ok {
		return game.Cooperate
	}

	if last == game.Betray {
		return game.Betray
	}

	if s.rng.Float64() < 0.9 {
		return game.Cooperate
	}
	return game.Betray
}

func (s *Joss) Reset() {}

// Tullock cooperates for the first twelve rounds, then latches a fixed
// cooperation probability: 90% of the opponent's cooperation rate over
// the first ten moves.
//
// Tullockは最初の12ラウンド協調し、その後は相手の最初の10手の協調率の90%を
// 固定の協調確率としてラッチします。
type Tullock struct {
	initialPhase    bool
	cooperationProb float32
	rng             *rand.Rand
}

func NewTullock(rng *rand.Rand) *Tullock {
	return &Tullock{initialPhase: true, cooperationProb: 1.0, rng: rng}
}

func (s *Tullock) Decide(_, opp game.History) game.Action {
	if len(opp) <= 11 {
		return game.Cooperate
	}

	if s.initialPhase {
		rate := opp[:10].CooperationRate()
		s.cooperationProb = math32.Max(0.0, rate*0.9)
		s.initialPhase = false
	}

	if s.rng.Float64() < float64(s.cooperationProb) {
		return game.Cooperate
	}
	return game.Betray
}

func (s *Tullock) Reset() {
	s.initialPhase = true
	s.cooperationProb = 1.0
}

// Anonymous starts with a 30% cooperation probability and every ten
// rounds blends it with the opponent's recent cooperation fraction
// (weights 0.7 and 0.3), clamped to [0.3, 0.7].
//
// Anonymousは協調確率30%から始め、10ラウンド毎に相手の直近の協調率と
// 混合（重み0.7と0.3）した上で [0.3, 0.7] にクランプします。
type Anonymous struct {
	cooperationProb float32
	rng             *rand.Rand
}

func NewAnonymous(rng *rand.Rand) *Anonymous {
	return &Anonymous{cooperationProb: 0.3, rng: rng}
}

func (s *Anonymous) Decide(_, opp game.History) game.Action {
	t := len(opp)
	if t > 0 && t%10 == 0 {
		fraction := opp.LastN(10).CooperationRate()
		// 混合してからクランプする
		s.cooperationProb = mathx.Clamp(0.7*s.cooperationProb+0.3*fraction, 0.3, 0.7)
	}

	if s.rng.Float64() < float64(s.cooperationProb) {
		return game.Cooperate
	}
	return game.Betray
}

func (s *Anonymous) Reset() {
	s.cooperationProb = 0.3
}

// Random cooperates with probability one half, independent of history.
//
// Randomは履歴に関係なく確率0.5で協調します。
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (s *Random) Decide(_, _ game.History) game.Action {
	if omwrand.Bool(s.rng) {
		return game.Cooperate
	}
	return game.Betray
}

func (s *Random) Reset() {}
