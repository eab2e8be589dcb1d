// Package tournament runs a round-robin iterated-prisoner's-dilemma
// tournament over a strategy catalogue and aggregates the results into
// per-pairing match records and a global ranking.
//
// Package tournament は戦略カタログに対する繰り返し囚人のジレンマの総当たり戦を実行し、
// 結果をペア毎の対戦レコードと全体順位表に集計します。
package tournament

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sw965/omw/parallel"
	"github.com/sw965/omw/slicesx"
	"gonum.org/v1/gonum/stat"

	"github.com/sw965/axelrod/game"
	"github.com/sw965/axelrod/strategy"
)

var (
	ErrInvalidRounds      = errors.New("Roundsエラー: 1以上の正の整数である必要があります")
	ErrInvalidSims        = errors.New("Simsエラー: 1以上の正の整数である必要があります")
	ErrInvalidParallelism = errors.New("Parallelismエラー: 1以上の正の整数である必要があります")
	ErrEmptyCatalogue     = errors.New("カタログエラー: 要素数が0です")
	ErrDuplicateCatalogue = errors.New("カタログエラー: 重複した要素があります")
)

type Config struct {
	// Rounds is the number of rounds per match.
	Rounds int
	// Sims is the number of independent matches per ordered pair.
	Sims int
	// Parallelism is the number of workers across tournament cells.
	Parallelism int
}

func (c Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("%w: Rounds = %d", ErrInvalidRounds, c.Rounds)
	}
	if c.Sims < 1 {
		return fmt.Errorf("%w: Sims = %d", ErrInvalidSims, c.Sims)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: Parallelism = %d", ErrInvalidParallelism, c.Parallelism)
	}
	return nil
}

// MatchRecord aggregates the Sims matches of one ordered pair.
// Totals are sums over all matches; averages are per match.
type MatchRecord struct {
	PlayerA string
	PlayerB string
	TotalA  int
	TotalB  int
	AvgA    float32
	AvgB    float32
}

// PairSummary carries the per-match score statistics of one ordered pair.
type PairSummary struct {
	PlayerA string
	PlayerB string
	MeanA   float64
	MeanB   float64
	StdDevA float64
	StdDevB float64
}

// RankingEntry is one row of the global ranking, sorted by total score
// descending. AvgScorePerGame is TotalScore divided by Sims.
type RankingEntry struct {
	Rank            int
	Name            string
	TotalScore      int
	AvgScorePerGame float32
}

type Result struct {
	MatchRecords  []MatchRecord
	PairSummaries []PairSummary
	Ranking       []RankingEntry
}

// Run plays every ordered pair of the catalogue (self-pairs included)
// for Config.Sims independent matches of Config.Rounds rounds each.
// Every match constructs fresh strategy instances, so no state leaks
// between repetitions, and cells share nothing and may run in parallel.
//
// Runはカタログの全順序対（自己対戦を含む）について、
// Config.RoundsラウンドのConfig.Sims回の独立した試合を行います。
// 試合毎に新しい戦略インスタンスを生成するため、繰り返し間で状態は持ち越されません。
// セル同士は何も共有しないので並列に実行できます。
func Run(catalogue []strategy.CatalogueEntry, config Config) (Result, error) {
	if err := config.Validate(); err != nil {
		return Result{}, err
	}

	n := len(catalogue)
	if n == 0 {
		return Result{}, fmt.Errorf("%w", ErrEmptyCatalogue)
	}

	ids := make([]strategy.ID, n)
	names := make([]string, n)
	for i, entry := range catalogue {
		ids[i] = entry.ID
		names[i] = entry.Name
	}
	if !slicesx.IsUnique(ids) || !slicesx.IsUnique(names) {
		return Result{}, fmt.Errorf("%w", ErrDuplicateCatalogue)
	}

	cellsN := n * n
	records := make([]MatchRecord, cellsN)
	summaries := make([]PairSummary, cellsN)

	err := parallel.For(cellsN, config.Parallelism, func(workerId, idx int) error {
		entryA := catalogue[idx/n]
		entryB := catalogue[idx%n]

		totalA, totalB := 0, 0
		scoresA := make([]float64, config.Sims)
		scoresB := make([]float64, config.Sims)

		for sim := 0; sim < config.Sims; sim++ {
			a, err := strategy.New(entryA.ID)
			if err != nil {
				return err
			}
			b, err := strategy.New(entryB.ID)
			if err != nil {
				return err
			}

			scoreA, scoreB, err := game.Simulate(a, b, config.Rounds)
			if err != nil {
				return err
			}

			totalA += scoreA
			totalB += scoreB
			scoresA[sim] = float64(scoreA)
			scoresB[sim] = float64(scoreB)
		}

		meanA := stat.Mean(scoresA, nil)
		meanB := stat.Mean(scoresB, nil)

		records[idx] = MatchRecord{
			PlayerA: entryA.Name,
			PlayerB: entryB.Name,
			TotalA:  totalA,
			TotalB:  totalB,
			AvgA:    float32(meanA),
			AvgB:    float32(meanB),
		}
		summaries[idx] = PairSummary{
			PlayerA: entryA.Name,
			PlayerB: entryB.Name,
			MeanA:   meanA,
			MeanB:   meanB,
			StdDevA: stat.StdDev(scoresA, nil),
			StdDevB: stat.StdDev(scoresB, nil),
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	// 全セルが揃ってから順位表を作る
	totals := map[string]int{}
	for _, record := range records {
		totals[record.PlayerA] += record.TotalA
		totals[record.PlayerB] += record.TotalB
	}

	ranking := make([]RankingEntry, 0, n)
	for _, entry := range catalogue {
		total := totals[entry.Name]
		ranking = append(ranking, RankingEntry{
			Name:            entry.Name,
			TotalScore:      total,
			AvgScorePerGame: float32(total) / float32(config.Sims),
		})
	}

	// 同点の場合はカタログの順序を保つ
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalScore > ranking[j].TotalScore
	})
	for i := range ranking {
		ranking[i].Rank = i + 1
	}

	return Result{
		MatchRecords:  records,
		PairSummaries: summaries,
		Ranking:       ranking,
	}, nil
}
