package strategy_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/seehuhn/mt19937"

	"github.com/sw965/axelrod/game"
	"github.com/sw965/axelrod/strategy"
)

func newTestRng(seed int64) *rand.Rand {
	rng := rand.New(mt19937.New())
	rng.Seed(seed)
	return rng
}

// cooperationFraction はdecideをtrials回呼び出し、協調の割合を返す
func cooperationFraction(trials int, decide func() game.Action) float64 {
	count := 0
	for i := 0; i < trials; i++ {
		if decide() == game.Cooperate {
			count++
		}
	}
	return float64(count) / float64(trials)
}

const (
	monteCarloTrials = 100000
	monteCarloEps    = 0.01
)

func TestGrofman(t *testing.T) {
	s := strategy.NewGrofman(newTestRng(0))

	t.Run("正常_初手は協調", func(t *testing.T) {
		if got := s.Decide(game.History{}, game.History{}); got != game.Cooperate {
			t.Errorf("want: Cooperate, got: %v", got)
		}
	})

	t.Run("正常_直前の手が一致していれば必ず協調", func(t *testing.T) {
		pairs := []struct{ self, opp game.Action }{
			{game.Cooperate, game.Cooperate},
			{game.Betray, game.Betray},
		}
		for _, pair := range pairs {
			for i := 0; i < 100; i++ {
				got := s.Decide(game.History{pair.self}, game.History{pair.opp})
				if got != game.Cooperate {
					t.Fatalf("want: Cooperate, got: %v", got)
				}
			}
		}
	})

	t.Run("正常_直前の手が不一致なら協調率は約2/7", func(t *testing.T) {
		self := game.History{game.Cooperate}
		opp := game.History{game.Betray}
		fraction := cooperationFraction(monteCarloTrials, func() game.Action {
			return s.Decide(self, opp)
		})
		want := 2.0 / 7.0
		if math.Abs(fraction-want) > monteCarloEps {
			t.Errorf("want: %v (±%v), got: %v", want, monteCarloEps, fraction)
		}
	})
}

func TestFeld(t *testing.T) {
	t.Run("正常_裏切りには必ず裏切りで応じる", func(t *testing.T) {
		s := strategy.NewFeld(newTestRng(0))
		opp := game.History{game.Cooperate, game.Betray}
		for i := 0; i < 100; i++ {
			if got := s.Decide(nil, opp); got != game.Betray {
				t.Fatalf("want: Betray, got: %v", got)
			}
		}
	})

	t.Run("正常_連続協調1回目の協調率は約1/12", func(t *testing.T) {
		s := strategy.NewFeld(newTestRng(1))
		fraction := cooperationFraction(monteCarloTrials, func() game.Action {
			s.Reset()
			return s.Decide(nil, game.History{game.Cooperate})
		})
		want := 1.0 / 12.0
		if math.Abs(fraction-want) > monteCarloEps {
			t.Errorf("want: %v (±%v), got: %v", want, monteCarloEps, fraction)
		}
	})

	t.Run("正常_裏切りでカウンタがリセットされる", func(t *testing.T) {
		s := strategy.NewFeld(newTestRng(2))
		fraction := cooperationFraction(monteCarloTrials, func() game.Action {
			s.Reset()
			// 協調でk=1、裏切りでリセット、その後の協調で再びk=1になる
			s.Decide(nil, game.History{game.Cooperate})
			s.Decide(nil, game.History{game.Cooperate, game.Betray})
			return s.Decide(nil, game.History{game.Cooperate, game.Betray, game.Cooperate})
		})
		want := 1.0 / 12.0
		if math.Abs(fraction-want) > monteCarloEps {
			t.Errorf("want: %v (±%v), got: %v", want, monteCarloEps, fraction)
		}
	})

	t.Run("正常_連続協調5回目の協調率は約1/4", func(t *testing.T) {
		s := strategy.NewFeld(newTestRng(3))
		opp := repeatAction(game.Cooperate, 5)
		fraction := cooperationFraction(monteCarloTrials, func() game.Action {
			s.Reset()
			var last game.Action
			for i := 1; i <= len(opp); i++ {
				last = s.Decide(nil, opp[:i])
			}
			return last
		})
		want := 5.0 / 20.0
		if math.Abs(fraction-want) > monteCarloEps {
			t.Errorf("want: %v (±%v), got: %v", want, monteCarloEps, fraction)
		}
	})
}

func TestJoss(t *testing.T) {
	t.Run("正常_裏切りには必ず裏切りで応じる", func(t *testing.T) {
		s := strategy.NewJoss(newTestRng(0))
		opp := game.History{game.Betray}
		for i := 0; i < 100; i++ {
			if got := s.Decide(nil, opp); got != game.Betray {
				t.Fatalf("want: Betray, got: %v", got)
			}
		}
	})

	t.Run("正常_協調への協調率は約0.9", func(t *testing.T) {
		s := strategy.NewJoss(newTestRng(1))
		opp := game.History{game.Cooperate}
		fraction := cooperationFraction(monteCarloTrials, func() game.Action {
			return s.Decide(nil, opp)
		})
		if math.Abs(fraction-0.9) > monteCarloEps {
			t.Errorf("want: 0.9 (±%v), got: %v", monteCarloEps, fraction)
		}
	})
}

func TestTullock(t *testing.T) {
	t.Run("正常_最初の12ラウンドは裏切られても協調", func(t *testing.T) {
		s := strategy.NewTullock(newTestRng(0))
		for n := 0; n <= 11; n++ {
			opp := repeatAction(game.Betray, n)
			if got := s.Decide(nil, opp); got != game.Cooperate {
				t.Errorf("履歴長%d: want: Cooperate, got: %v", n, got)
			}
		}
	})

	t.Run("正常_最初の10手が全裏切りなら以降は必ず裏切る", func(t *testing.T) {
		s := strategy.NewTullock(newTestRng(1))
		opp := repeatAction(game.Betray, 12)
		for i := 0; i < 200; i++ {
			if got := s.Decide(nil, opp); got != game.Betray {
				t.Fatalf("want: Betray, got: %v", got)
			}
		}
	})

	t.Run("正常_最初の10手が全協調なら協調率は約0.9", func(t *testing.T) {
		s := strategy.NewTullock(newTestRng(2))
		opp := repeatAction(game.Cooperate, 12)
		fraction := cooperationFraction(monteCarloTrials, func() game.Action {
			return s.Decide(nil, opp)
		})
		if math.Abs(fraction-0.9) > monteCarloEps {
			t.Errorf("want: 0.9 (±%v), got: %v", monteCarloEps, fraction)
		}
	})

	t.Run("正常_Resetでラッチが解除される", func(t *testing.T) {
		s := strategy.NewTullock(newTestRng(3))
		s.Decide(nil, repeatAction(game.Betray, 12)) // 協調確率0をラッチ
		s.Reset()

		if got := s.Decide(nil, game.History{}); got != game.Cooperate {
			t.Fatalf("Reset後の初手は協調のはず: got: %v", got)
		}

		opp := repeatAction(game.Cooperate, 12)
		fraction := cooperationFraction(monteCarloTrials, func() game.Action {
			return s.Decide(nil, opp)
		})
		if math.Abs(fraction-0.9) > monteCarloEps {
			t.Errorf("want: 0.9 (±%v), got: %v", monteCarloEps, fraction)
		}
	})
}

func TestAnonymous(t *testing.T) {
	t.Run("正常_10の倍数以外のラウンドでは初期の協調率0.3", func(t *testing.T) {
		s := strategy.NewAnonymous(newTestRng(0))
		opp := repeatAction(game.Cooperate, 5)
		fraction := cooperationFraction(monteCarloTrials, func() game.Action {
			return s.Decide(nil, opp)
		})
		if math.Abs(fraction-0.3) > monteCarloEps {
			t.Errorf("want: 0.3 (±%v), got: %v", monteCarloEps, fraction)
		}
	})

	t.Run("正常_10ラウンド目で全協調の相手に合わせて0.51へ更新", func(t *testing.T) {
		s := strategy.NewAnonymous(newTestRng(1))
		opp := repeatAction(game.Cooperate, 10)
		fraction := cooperationFraction(monteCarloTrials, func() game.Action {
			s.Reset()
			// 0.7*0.3 + 0.3*1.0 = 0.51
			return s.Decide(nil, opp)
		})
		if math.Abs(fraction-0.51) > monteCarloEps {
			t.Errorf("want: 0.51 (±%v), got: %v", monteCarloEps, fraction)
		}
	})

	t.Run("正常_下限0.3にクランプされる", func(t *testing.T) {
		s := strategy.NewAnonymous(newTestRng(2))
		opp := repeatAction(game.Betray, 10)
		fraction := cooperationFraction(monteCarloTrials, func() game.Action {
			s.Reset()
			// 0.7*0.3 + 0.3*0.0 = 0.21 → 0.3
			return s.Decide(nil, opp)
		})
		if math.Abs(fraction-0.3) > monteCarloEps {
			t.Errorf("want: 0.3 (±%v), got: %v", monteCarloEps, fraction)
		}
	})

	t.Run("正常_上限0.7にクランプされる", func(t *testing.T) {
		s := strategy.NewAnonymous(newTestRng(3))
		opp := repeatAction(game.Cooperate, 10)
		// 更新を繰り返すと協調確率は0.7に収束する
		for i := 0; i < 200; i++ {
			s.Decide(nil, opp)
		}
		fraction := cooperationFraction(monteCarloTrials, func() game.Action {
			return s.Decide(nil, opp)
		})
		if math.Abs(fraction-0.7) > monteCarloEps {
			t.Errorf("want: 0.7 (±%v), got: %v", monteCarloEps, fraction)
		}
	})
}

func TestRandom(t *testing.T) {
	s := strategy.NewRandom(newTestRng(0))
	fraction := cooperationFraction(monteCarloTrials, func() game.Action {
		return s.Decide(nil, nil)
	})
	if math.Abs(fraction-0.5) > monteCarloEps {
		t.Errorf("want: 0.5 (±%v), got: %v", monteCarloEps, fraction)
	}
}

// 同じシードを与えた2つのインスタンスは同じ決定列を生成する
func TestProbabilisticReproducibility(t *testing.T) {
	oppSchedule := make(game.History, 200)
	scheduleRng := newTestRng(999)
	for i := range oppSchedule {
		if scheduleRng.Float64() < 0.5 {
			oppSchedule[i] = game.Cooperate
		} else {
			oppSchedule[i] = game.Betray
		}
	}

	tests := []struct {
		name string
		new  func(rng *rand.Rand) game.Strategy
	}{
		{name: "Grofman", new: func(rng *rand.Rand) game.Strategy { return strategy.NewGrofman(rng) }},
		{name: "Feld", new: func(rng *rand.Rand) game.Strategy { return strategy.NewFeld(rng) }},
		{name: "Joss", new: func(rng *rand.Rand) game.Strategy { return strategy.NewJoss(rng) }},
		{name: "Tullock", new: func(rng *rand.Rand) game.Strategy { return strategy.NewTullock(rng) }},
		{name: "Anonymous", new: func(rng *rand.Rand) game.Strategy { return strategy.NewAnonymous(rng) }},
		{name: "Random", new: func(rng *rand.Rand) game.Strategy { return strategy.NewRandom(rng) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Helper()
			seed := int64(12345)
			first := playAgainstSchedule(tc.new(newTestRng(seed)), oppSchedule)
			second := playAgainstSchedule(tc.new(newTestRng(seed)), oppSchedule)
			if !slices.Equal(first, second) {
				t.Errorf("同じシードで決定列が一致しません")
			}
		})
	}
}
