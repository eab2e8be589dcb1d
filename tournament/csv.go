package tournament

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	matchRecordsHeader = []string{"PlayerA", "PlayerB", "TotalA", "TotalB", "AvgA", "AvgB"}
	rankingHeader      = []string{"Rank", "Strategy", "TotalScore", "AvgScorePerGame"}
)

// 平均はCSVでは小数第1位までに丸める
func formatAvg(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 1, 32)
}

// WriteMatchRecords writes one CSV row per ordered pair, preceded by the
// header. Totals are integers and averages carry one decimal place.
func WriteMatchRecords(w io.Writer, records []MatchRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(matchRecordsHeader); err != nil {
		return err
	}

	for _, record := range records {
		row := []string{
			record.PlayerA,
			record.PlayerB,
			strconv.Itoa(record.TotalA),
			strconv.Itoa(record.TotalB),
			formatAvg(record.AvgA),
			formatAvg(record.AvgB),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteRanking writes one CSV row per strategy in ranking order,
// preceded by the header.
func WriteRanking(w io.Writer, ranking []RankingEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rankingHeader); err != nil {
		return err
	}

	for _, entry := range ranking {
		row := []string{
			strconv.Itoa(entry.Rank),
			entry.Name,
			strconv.Itoa(entry.TotalScore),
			formatAvg(entry.AvgScorePerGame),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveMatchRecordsCSV writes the match records to a new file at path.
func SaveMatchRecordsCSV(path string, records []MatchRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("対戦結果ファイルの作成に失敗しました: %w", err)
	}

	if err := WriteMatchRecords(f, records); err != nil {
		f.Close()
		return fmt.Errorf("対戦結果の書き込みに失敗しました: %w", err)
	}
	return f.Close()
}

// SaveRankingCSV writes the ranking to a new file at path.
func SaveRankingCSV(path string, ranking []RankingEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("順位表ファイルの作成に失敗しました: %w", err)
	}

	if err := WriteRanking(f, ranking); err != nil {
		f.Close()
		return fmt.Errorf("順位表の書き込みに失敗しました: %w", err)
	}
	return f.Close()
}
