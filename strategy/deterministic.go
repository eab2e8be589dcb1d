package strategy

import (
	"github.com/chewxy/math32"

	"github.com/sw965/axelrod/game"
)

// TitForTat cooperates on the first round and mirrors the opponent's
// last move afterwards.
//
// TitForTatは初手で協調し、以降は相手の直前の手を真似ます。
type TitForTat struct{}

func NewTitForTat() *TitForTat {
	return &TitForTat{}
}

func (s *TitForTat) Decide(_, opp game.History) game.Action {
	last, ok := opp.Last()
	if !ok {
		return game.Cooperate
	}
	return last
}

func (s *TitForTat) Reset() {}

// TidemanChieruzzi mirrors like TitForTat but lengthens its punishment:
// from the opponent's second consecutive betrayal onwards, every further
// consecutive betrayal adds one extra punishing betrayal.
//
// TidemanChieruzziはTitForTatのように真似つつ、相手の2回目の連続裏切り以降、
// 連続裏切りの度に報復の裏切りを1回ずつ追加します。
type TidemanChieruzzi struct {
	consecutiveBetrayals int
	punishmentCounter    int
}

func NewTidemanChieruzzi() *TidemanChieruzzi {
	return &TidemanChieruzzi{}
}

func (s *TidemanChieruzzi) Decide(_, opp game.History) game.Action {
	last, ok := opp.Last()
	if !ok {
		return game.Cooperate
	}

	if last == game.Betray {
		s.consecutiveBetrayals++
		if s.consecutiveBetrayals >= 2 {
			s.punishmentCounter = s.consecutiveBetrayals - 1
		}
		return game.Betray
	}

	s.consecutiveBetrayals = 0
	if s.punishmentCounter > 0 {
		s.punishmentCounter--
		return game.Betray
	}
	return game.Cooperate
}

func (s *TidemanChieruzzi) Reset() {
	s.consecutiveBetrayals = 0
	s.punishmentCounter = 0
}

// Nydegger plays TitForTat for the first four rounds. Afterwards it scores
// the last three opponent moves as A = 4*W0 + 2*W1 + W2 (oldest first,
// betrayal = 1) and cooperates iff A is one of {0, 1, 6, 7}.
//
// Nydeggerは最初の4ラウンドはTitForTatを行い、以降は相手の直近3手を
// A = 4*W0 + 2*W1 + W2（古い順、裏切り=1）として評価し、
// Aが {0, 1, 6, 7} のいずれかの場合のみ協調します。
type Nydegger struct{}

func NewNydegger() *Nydegger {
	return &Nydegger{}
}

func (s *Nydegger) Decide(_, opp game.History) game.Action {
	if len(opp) <= 3 {
		last, ok := opp.Last()
		if !ok {
			return game.Cooperate
		}
		return last
	}

	w := opp.LastN(3)
	a := 0
	if w[0] == game.Betray {
		a += 4
	}
	if w[1] == game.Betray {
		a += 2
	}
	if w[2] == game.Betray {
		a += 1
	}

	switch a {
	case 0, 1, 6, 7:
		return game.Cooperate
	default:
		return game.Betray
	}
}

func (s *Nydegger) Reset() {}

// Shubik punishes each opponent betrayal with a run of betrayals whose
// length grows by one for every provocation.
//
// Shubikは相手の裏切りの度に、1回ずつ長くなる報復の裏切りの連続で罰します。
type Shubik struct {
	revengeCounter int
	revengeLength  int
}

func NewShubik() *Shubik {
	return &Shubik{revengeLength: 1}
}

func (s *Shubik) Decide(_, opp game.History) game.Action {
	if last, ok := opp.Last(); ok && last == game.Betray {
		s.revengeLength++
		s.revengeCounter = s.revengeLength
	}

	if s.revengeCounter > 0 {
		s.revengeCounter--
		return game.Betray
	}
	return game.Cooperate
}

func (s *Shubik) Reset() {
	s.revengeCounter = 0
	s.revengeLength = 1
}

// SteinRapoport cooperates for the first five rounds, then mirrors, and
// on every 15th round betrays when the opponent's overall cooperation
// frequency looks random (within 0.2 of one half).
//
// SteinRapoportは最初の5ラウンド協調し、その後は真似を行い、
// 15ラウンド毎に相手の協調率がランダムに見える場合（0.5±0.2未満）は裏切ります。
type SteinRapoport struct{}

func NewSteinRapoport() *SteinRapoport {
	return &SteinRapoport{}
}

func (s *SteinRapoport) Decide(_, opp game.History) game.Action {
	t := len(opp)
	if t <= 4 {
		return game.Cooperate
	}

	if t%15 == 0 {
		p := opp.CooperationRate()
		if math32.Abs(p-0.5) < 0.2 {
			return game.Betray
		}
	}

	last, _ := opp.Last()
	return last
}

func (s *SteinRapoport) Reset() {}

// Grudger cooperates until the opponent betrays once, then betrays forever.
//
// Grudgerは相手が一度でも裏切るまで協調し、以降は永久に裏切ります。
type Grudger struct {
	everBetrayed bool
}

func NewGrudger() *Grudger {
	return &Grudger{}
}

func (s *Grudger) Decide(_, opp game.History) game.Action {
	if s.everBetrayed {
		return game.Betray
	}

	if opp.Count(game.Betray) > 0 {
		s.everBetrayed = true
		return game.Betray
	}
	return game.Cooperate
}

func (s *Grudger) Reset() {
	s.everBetrayed = false
}

// Davis cooperates for the first eleven rounds, then betrays forever if
// the opponent has ever betrayed.
//
// Davisは最初の11ラウンド協調し、その後は相手が一度でも裏切っていれば永久に裏切ります。
type Davis struct {
	opponentBetrayed bool
}

func NewDavis() *Davis {
	return &Davis{}
}

func (s *Davis) Decide(_, opp game.History) game.Action {
	if len(opp) <= 10 {
		return game.Cooperate
	}

	if s.opponentBetrayed {
		return game.Betray
	}

	if opp.Count(game.Betray) > 0 {
		s.opponentBetrayed = true
		return game.Betray
	}
	return game.Cooperate
}

func (s *Davis) Reset() {
	s.opponentBetrayed = false
}

const graaskampWindowCap = 10

// Graaskamp plays TitForTat for 51 rounds, betrays on round 52, mirrors
// for five more rounds, and then watches a window of the last ten
// opponent moves: once their cooperation fraction looks random (within
// 0.1 of one half) it betrays for the rest of the match.
//
// GraaskampはTitForTatを51ラウンド行い、52ラウンド目で裏切り、さらに5ラウンド真似た後、
// 相手の直近10手の窓を監視します。協調率がランダムに見えた時点（0.5±0.1未満）で、
// 以降は試合終了まで裏切り続けます。
type Graaskamp struct {
	randomDetected bool
	window         game.History
}

func NewGraaskamp() *Graaskamp {
	return &Graaskamp{window: make(game.History, 0, graaskampWindowCap)}
}

func (s *Graaskamp) Decide(_, opp game.History) game.Action {
	t := len(opp)
	switch {
	case t <= 50:
		last, ok := opp.Last()
		if !ok {
			return game.Cooperate
		}
		return last
	case t == 51:
		return game.Betray
	case t <= 56:
		last, _ := opp.Last()
		return last
	}

	last, _ := opp.Last()
	if !s.randomDetected {
		// 窓の判定は最新の観測を加える前に行う
		if len(s.window) >= graaskampWindowCap {
			p := s.window.CooperationRate()
			if math32.Abs(p-0.5) < 0.1 {
				s.randomDetected = true
			}
		}
		s.window = append(s.window, last)
		if len(s.window) > graaskampWindowCap {
			s.window = s.window[1:]
		}
	}

	if s.randomDetected {
		return game.Betray
	}
	return last
}

func (s *Graaskamp) Reset() {
	s.randomDetected = false
	s.window = s.window[:0]
}

// Downing estimates the opponent's cooperation probability p from the
// observed moves and plays the action with the larger expected payoff:
// betray when 5p + (1-p) exceeds 3p.
//
// Downingは観測した手から相手の協調確率pを推定し、期待利得の大きい行動を選びます。
// 5p + (1-p) が 3p を上回る場合は裏切ります。
type Downing struct {
	opponentCooperations int
	opponentTotal        int
}

func NewDowning() *Downing {
	return &Downing{}
}

func (s *Downing) Decide(_, opp game.History) game.Action {
	last, ok := opp.Last()
	if !ok {
		return game.Cooperate
	}

	s.opponentTotal++
	if last == game.Cooperate {
		s.opponentCooperations++
	}

	p := float32(s.opponentCooperations) / float32(s.opponentTotal)
	betrayValue := float32(game.TemptationPayoff)*p + float32(game.PunishmentPayoff)*(1.0-p)
	cooperateValue := float32(game.RewardPayoff)*p + float32(game.SuckerPayoff)*(1.0-p)

	if betrayValue > cooperateValue {
		return game.Betray
	}
	return game.Cooperate
}

func (s *Downing) Reset() {
	s.opponentCooperations = 0
	s.opponentTotal = 0
}
