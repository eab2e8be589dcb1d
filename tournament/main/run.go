package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/sw965/axelrod/strategy"
	"github.com/sw965/axelrod/tournament"
)

func main() {
	rounds := flag.Int("rounds", 400, "1試合のラウンド数")
	sims := flag.Int("sims", 100, "1ペアあたりの独立した試合数")
	matchCSV := flag.String("match_csv", "match_results.csv", "対戦結果CSVの出力先")
	rankingCSV := flag.String("ranking_csv", "ranking.csv", "順位表CSVの出力先")
	parallelism := flag.Int("parallelism", runtime.NumCPU(), "セルを処理する並列数")
	verbose := flag.Bool("verbose", false, "ペア毎の統計も表示する")
	flag.Parse()

	catalogue := strategy.Catalogue()
	config := tournament.Config{
		Rounds:      *rounds,
		Sims:        *sims,
		Parallelism: *parallelism,
	}

	log.Printf("総当たり戦を開始します: 戦略数 %d, %d試合 x %dラウンド", len(catalogue), *sims, *rounds)

	result, err := tournament.Run(catalogue, config)
	if err != nil {
		log.Fatalf("総当たり戦の実行に失敗しました: %v", err)
	}

	if err := tournament.SaveMatchRecordsCSV(*matchCSV, result.MatchRecords); err != nil {
		log.Fatalf("%v", err)
	}

	if err := tournament.SaveRankingCSV(*rankingCSV, result.Ranking); err != nil {
		log.Fatalf("%v", err)
	}

	if err := tournament.FprintRanking(os.Stdout, result, config); err != nil {
		log.Fatalf("順位表の表示に失敗しました: %v", err)
	}

	if *verbose {
		if err := tournament.FprintPairSummaries(os.Stdout, result.PairSummaries); err != nil {
			log.Fatalf("ペア統計の表示に失敗しました: %v", err)
		}
	}

	log.Printf("%s と %s に保存しました", *matchCSV, *rankingCSV)
}
