package perftests

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	marketplace "kemazon-client/internal/marketplaceService"
	model "kemazon-client/internal/models"
	"kemazon-client/internal/push"
	"kemazon-client/internal/repository"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name        string
	NumUsers    int
	NumAuctions int
	BidsPerUser int
	ReadRatio   int
	MaxBidStep  int
	Burst       bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()
	if len(om.latencies) == 0 {
		return
	}
	latencies := om.latencies
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupMarketplace creates the repository and service with numAuctions live
// auctions, one per product.
func setupMarketplace(numAuctions int) (*repository.MemoryRepo, *marketplace.Service) {
	repo := repository.NewMemoryRepo()
	svc := marketplace.NewService(repo, push.NewMemoryBus())

	now := time.Now()
	for i := 0; i < numAuctions; i++ {
		repo.AddProduct(model.Product{
			ID:          i + 1,
			Name:        fmt.Sprintf("product_%d", i+1),
			Description: "Load test product",
			Auctions: []model.Auction{
				{
					ID:        i + 1,
					ProductID: i + 1,
					Base:      100,
					Status:    model.AuctionStatusActive,
					DateStart: now.Add(-time.Hour).Format("2006-01-02"),
					TimeStart: now.Add(-time.Hour).Format("15:04:05"),
					DateEnd:   now.Add(24 * time.Hour).Format("2006-01-02"),
					TimeEnd:   now.Add(24 * time.Hour).Format("15:04:05"),
				},
			},
		})
	}
	return repo, svc
}

// Benchmark_Load_Marketplace runs multiple scenarios
func Benchmark_Load_Marketplace(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 200, 10, 0, 50, false},
		{"High-Contention-WriteHeavy", 500, 10, 20, 0, 20, false},
		{"Mixed-Workload", 300, 50, 15, 7, 30, false},
		{"ReadHeavy", 200, 50, 5, 9, 20, false},
		{"Edge-Case-SingleAuction", 100, 1, 10, 5, 10, false},
		{"Peak-Burst", 500, 50, 50, 0, 20, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	_, svc := setupMarketplace(s.NumAuctions)

	var totalOps, acceptedBids, refusedBids, totalReads int64
	auctionAccepted := make([]int64, s.NumAuctions)
	lastAmounts := make([]int64, s.NumAuctions)
	for i := range lastAmounts {
		lastAmounts[i] = 100
	}
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			auctionIndex := rnd.Intn(s.NumAuctions)
			auctionID := auctionIndex + 1
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if rnd.Intn(2) == 0 {
					if _, err := svc.LatestAmounts(auctionID); err != nil {
						b.Logf("ignored read error: %v", err)
					}
				} else {
					if _, err := svc.BidHistory(auctionID, 5, 1); err != nil {
						b.Logf("ignored read error: %v", err)
					}
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				// Each writer raises the auction past the current minimum.
				amount := atomic.AddInt64(&lastAmounts[auctionIndex], int64(100+rnd.Intn(s.MaxBidStep)))
				status, _, err := svc.PlaceBid(model.PlaceBidRequest{
					AuctionID: auctionID,
					UserID:    rnd.Intn(s.NumUsers) + 1,
					Amount:    float64(amount),
					Status:    1,
				})
				if err != nil {
					b.Fatalf("unexpected hard failure: %v", err)
				}
				if status == 200 {
					atomic.AddInt64(&acceptedBids, 1)
					atomic.AddInt64(&auctionAccepted[auctionIndex], 1)
				} else {
					atomic.AddInt64(&refusedBids, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Accepted Bids: %d | Refused Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, acceptedBids, refusedBids, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)

	for i, v := range auctionAccepted {
		if v > 0 {
			b.Logf("Auction %d accepted bids: %d", i+1, v)
		}
	}
}
