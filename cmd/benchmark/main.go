package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/joripage/ordercache-dev/config"
	"github.com/joripage/ordercache-dev/pkg/logging"
	"github.com/joripage/ordercache-dev/pkg/ordercache"
)

func randomOrder(cfg *config.BenchmarkConfig) *ordercache.Order {
	side := ordercache.SideBuy
	if rand.Intn(2) == 0 {
		side = ordercache.SideSell
	}
	qty := uint64(rand.Int63n(int64(cfg.MaxQty))) + 1

	return ordercache.NewOrder(
		uuid.NewString(),
		fmt.Sprintf("SecId%d", rand.Intn(cfg.Securities)+1),
		side,
		qty,
		fmt.Sprintf("User%d", rand.Intn(cfg.Users)+1),
		fmt.Sprintf("Company%d", rand.Intn(cfg.Companies)+1),
	)
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "config-file", "./config/benchmark.yaml", "Specify config file path")
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		panic(err)
	}

	logger, err := logging.Init(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // nolint

	bench := cfg.Benchmark
	cache := ordercache.NewCache()

	start := time.Now()
	for i := 0; i < bench.Orders; i++ {
		if err := cache.AddOrder(randomOrder(bench)); err != nil {
			zap.S().Errorf("add order fail with err: %v", err)
		}
	}
	zap.S().Infof("populated %d orders in %s", bench.Orders, time.Since(start))

	start = time.Now()
	var totalMatched uint64
	var mu sync.Mutex

	var wg sync.WaitGroup
	for w := 0; w < bench.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			var matched uint64
			for i := 0; i < bench.Iterations; i++ {
				securityID := fmt.Sprintf("SecId%d", worker%bench.Securities+1)
				switch i % 4 {
				case 0:
					cache.CancelOrder(uuid.NewString()) // unknown id, exercises the no-op path
				case 1:
					cache.CancelOrdersForUser(fmt.Sprintf("User%d", rand.Intn(bench.Users)+1))
				case 2:
					cache.CancelOrdersForSecIDWithMinimumQty(securityID, bench.MaxQty/2)
				default:
					matched += cache.MatchingSizeForSecurity(securityID)
				}
			}

			mu.Lock()
			totalMatched += matched
			mu.Unlock()
		}(w)
	}
	wg.Wait()

	elapsed := time.Since(start)
	ops := bench.Workers * bench.Iterations
	zap.S().Infow("benchmark done",
		"workers", bench.Workers,
		"ops", ops,
		"elapsed", elapsed.String(),
		"ops_per_sec", float64(ops)/elapsed.Seconds(),
		"total_matched_qty", totalMatched,
	)
}
