package tournament

import (
	"fmt"
	"io"
)

// FprintRanking writes a human-readable ranking echo. It is for console
// consumption only; the CSV streams are the machine contract.
//
// FprintRankingは人間が読む用の順位表を書き出します。
// 機械的な契約はCSV側であり、こちらは表示専用です。
func FprintRanking(w io.Writer, result Result, config Config) error {
	if _, err := fmt.Fprintf(w, "=== 最終順位 (%d試合 x %dラウンド) ===\n", config.Sims, config.Rounds); err != nil {
		return err
	}

	for _, entry := range result.Ranking {
		_, err := fmt.Fprintf(
			w, "%2d. %-20s %8d %10.2f\n",
			entry.Rank, entry.Name, entry.TotalScore, entry.AvgScorePerGame,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// FprintPairSummaries writes the per-pair score statistics (mean and
// standard deviation over the repeated matches of each cell).
func FprintPairSummaries(w io.Writer, summaries []PairSummary) error {
	for _, s := range summaries {
		_, err := fmt.Fprintf(
			w, "%-20s vs %-20s  A: %8.1f (±%.1f)  B: %8.1f (±%.1f)\n",
			s.PlayerA, s.PlayerB, s.MeanA, s.StdDevA, s.MeanB, s.StdDevB,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
