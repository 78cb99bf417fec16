package experiments

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"catan/experiments/metrics"
)

// RunThroughputExperiment measures how many random-vs-random games per
// second the engine sustains at increasing worker counts.
func RunThroughputExperiment() {
	const GamesPerConfig = 64
	workerCounts := []int{1, 2, 4, 8, 16}

	config := metrics.AgentConfig{ID: 1, Kind: RandomKind, Seed: 101}
	gameRecords := []metrics.GameRecord{}
	var recordsMu sync.Mutex

	log.Info().Msg("starting throughput experiment...")

	count := 0
	for _, workers := range workerCounts {
		start := time.Now()

		var wg sync.WaitGroup
		jobs := make(chan int)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for id := range jobs {
					gameMetric, _ := runGame(config, config, uint64(id))
					recordsMu.Lock()
					gameRecords = append(gameRecords, metrics.GameRecord{
						ID:         id,
						Agent1:     config.ID,
						Agent2:     config.ID,
						GameMetric: gameMetric,
					})
					recordsMu.Unlock()
				}
			}()
		}
		for i := 0; i < GamesPerConfig; i++ {
			count++
			jobs <- count
		}
		close(jobs)
		wg.Wait()

		elapsed := time.Since(start)
		log.Info().Msgf("%d workers finished %d games in %s (%.1f games/sec)",
			workers, GamesPerConfig, elapsed, float64(GamesPerConfig)/elapsed.Seconds())
	}

	log.Info().Msg("completed throughput experiment")

	storeRecords("throughput", []metrics.AgentConfig{config}, gameRecords, nil)
}
