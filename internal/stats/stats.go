// Package stats runs parallel uniformity checks of isaac.Stream.Uniform.
package stats

import (
	"context"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/lox/isaacrand/isaac"
	"golang.org/x/sync/errgroup"
)

const checkEvery = 4096

// Config describes one uniformity run.
type Config struct {
	N       uint32 // sample over [0, N]
	Trials  int
	Workers int
	// Buckets caps the histogram width. Ranges with more residues than
	// Buckets are folded into Buckets equal slices.
	Buckets int
	Logger  *log.Logger
}

// Result is the merged histogram of a run.
type Result struct {
	N      uint32
	Trials int
	Counts []int
	Sum    float64
	SumSq  float64
}

// Run draws cfg.Trials values from independent worker streams, each seeded
// from words of parent, and returns the merged histogram. parent is only
// used before the workers start.
func Run(ctx context.Context, parent *isaac.Stream, cfg Config) (*Result, error) {
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", cfg.Trials)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Buckets <= 0 {
		cfg.Buckets = 64
	}
	buckets := cfg.Buckets
	if uint64(cfg.N)+1 < uint64(buckets) {
		buckets = int(cfg.N) + 1
	}

	// Seed every worker up front so the run is reproducible from parent.
	streams := make([]*isaac.Stream, cfg.Workers)
	for w := range streams {
		var seed [32]byte
		parent.Read(seed[:])
		state := isaac.NewState()
		isaac.Seed(state, isaac.SeedBytes(seed[:]))
		streams[w] = isaac.NewStream(state)
	}

	partials := make([]*Result, cfg.Workers)
	perWorker := cfg.Trials / cfg.Workers
	remainder := cfg.Trials % cfg.Workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		g.Go(func() error {
			res, err := runWorker(ctx, streams[w], cfg.N, buckets, trials)
			if err != nil {
				return err
			}
			partials[w] = res
			if cfg.Logger != nil {
				cfg.Logger.Debug("worker finished", "worker", w, "trials", trials)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &Result{N: cfg.N, Counts: make([]int, buckets)}
	for _, p := range partials {
		total.merge(p)
	}
	return total, nil
}

func runWorker(ctx context.Context, r *isaac.Stream, n uint32, buckets, trials int) (*Result, error) {
	res := &Result{N: n, Counts: make([]int, buckets)}
	span := uint64(n) + 1
	for i := 0; i < trials; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		v := r.Uniform(n)
		res.Counts[bucketOf(v, buckets, span)]++
		f := float64(v)
		res.Sum += f
		res.SumSq += f * f
		res.Trials++
	}
	return res, nil
}

// bucketOf maps v in [0, span) onto one of buckets equal-as-possible slices.
func bucketOf(v uint32, buckets int, span uint64) int {
	return int(uint64(v) * uint64(buckets) / span)
}

// bucketWidth is the number of residues bucketOf maps to bucket i: those v
// with ceil(i*span/buckets) <= v < ceil((i+1)*span/buckets).
func bucketWidth(i, buckets int, span uint64) uint64 {
	b := uint64(buckets)
	lo := (uint64(i)*span + b - 1) / b
	hi := (uint64(i+1)*span + b - 1) / b
	return hi - lo
}

func (r *Result) merge(o *Result) {
	r.Trials += o.Trials
	r.Sum += o.Sum
	r.SumSq += o.SumSq
	for i, c := range o.Counts {
		r.Counts[i] += c
	}
}

// Mean returns the mean drawn value.
func (r *Result) Mean() float64 {
	if r.Trials == 0 {
		return 0
	}
	return r.Sum / float64(r.Trials)
}

// ExpectedMean is n/2, the mean of the uniform distribution over [0, n].
func (r *Result) ExpectedMean() float64 {
	return float64(r.N) / 2
}

// StdDev returns the sample standard deviation of the drawn values.
func (r *Result) StdDev() float64 {
	if r.Trials < 2 {
		return 0
	}
	mean := r.Mean()
	v := (r.SumSq - float64(r.Trials)*mean*mean) / float64(r.Trials-1)
	if v < 0 {
		return 0
	}
	return math.Sqrt(v)
}

// ChiSquare returns the chi-square statistic of the histogram against the
// uniform expectation and its degrees of freedom. When the range was folded
// each bucket's expectation is scaled by the number of residues it holds.
func (r *Result) ChiSquare() (chi float64, df int) {
	k := len(r.Counts)
	if k < 2 || r.Trials == 0 {
		return 0, 0
	}
	span := uint64(r.N) + 1
	for i, c := range r.Counts {
		expected := float64(r.Trials) * float64(bucketWidth(i, k, span)) / float64(span)
		if expected == 0 {
			continue
		}
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi, k - 1
}

// ZScore normalises the chi-square statistic; values beyond about 4 mean the
// histogram is not plausibly uniform.
func (r *Result) ZScore() float64 {
	chi, df := r.ChiSquare()
	if df == 0 {
		return 0
	}
	return (chi - float64(df)) / math.Sqrt(2*float64(df))
}

// RejectionRate is the fraction of words Uniform discards for this range.
func (r *Result) RejectionRate() float64 {
	return float64(isaac.RejectionLimit(uint64(r.N)+1)) / (1 << 32)
}
