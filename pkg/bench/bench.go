// Package bench times every priority queue operation across input sizes
// and backends, in isolation, on copies of a shared base queue.
package bench

import (
	"context"
	"slices"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-pqueue/pkg/datastructs/pqueue"
	"github.com/huynhanx03/go-pqueue/pkg/generator"
	"github.com/huynhanx03/go-pqueue/pkg/hash"
	"github.com/huynhanx03/go-pqueue/pkg/runtime"
	"github.com/huynhanx03/go-pqueue/pkg/settings"
)

// ErrBaseMutated is returned when a timed operation changed the shared base queue.
var ErrBaseMutated = errors.New("base queue mutated during benchmark")

// Operation names a timed queue operation.
type Operation string

const (
	OpInsert     Operation = "Insert"
	OpExtractMax Operation = "ExtractMax"
	OpFindMax    Operation = "FindMax"
	OpModifyKey  Operation = "ModifyKey"
	OpSize       Operation = "Size"
)

// Operations returns the timed operations in report column order.
func Operations() []Operation {
	return []Operation{OpInsert, OpExtractMax, OpFindMax, OpModifyKey, OpSize}
}

// Runner runs benchmarks for a fixed configuration.
type Runner struct {
	cfg       settings.Bench
	log       *zap.Logger
	reg       prometheus.Registerer
	durations *prometheus.HistogramVec
}

// NewRunner validates cfg and builds a Runner.
func NewRunner(cfg *settings.Bench, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("nil bench config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		cfg: *cfg,
		log: zap.NewNop(),
	}
	r.cfg.Sizes = slices.Clone(cfg.Sizes)
	for _, opt := range opts {
		opt(r)
	}

	durations, err := registerDurations(r.reg, newDurationVec())
	if err != nil {
		return nil, err
	}
	r.durations = durations
	return r, nil
}

// Run benchmarks each kind (every kind when none are given) at every configured size.
// All kinds share one dataset so their inputs are identical.
func (r *Runner) Run(ctx context.Context, kinds ...pqueue.Kind) (*Report, error) {
	if len(kinds) == 0 {
		kinds = pqueue.Kinds()
	}

	ds, err := generator.NewDataset(slices.Max(r.cfg.Sizes), r.cfg.MaxPriority, r.cfg.Seed, r.cfg.ModifySample)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build dataset")
	}

	results := make([][]Result, len(kinds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.cfg.Parallelism, 1))

	for i, kind := range kinds {
		results[i] = make([]Result, len(r.cfg.Sizes))
		g.Go(func() error {
			for j, size := range r.cfg.Sizes {
				res, err := r.measure(ctx, kind, size, ds)
				if err != nil {
					return errors.Wrapf(err, "%s at size %d", kind, size)
				}
				results[i][j] = res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Sizes: slices.Clone(r.cfg.Sizes), Kinds: slices.Clone(kinds)}
	for _, row := range results {
		report.Results = append(report.Results, row...)
	}
	return report, nil
}

// newBase returns a queue holding the first size dataset pairs with one spare
// slot, so the timed Insert never pays for a grow.
func newBase(kind pqueue.Kind, size int, ds *generator.Dataset) (pqueue.PriorityQueue[int], error) {
	base, err := pqueue.New[int](kind, size+1)
	if err != nil {
		return nil, err
	}
	ds.Populate(base, size)
	return base, nil
}

// measure times each operation Repetitions times against copies of a base
// queue holding the first size dataset pairs.
func (r *Runner) measure(ctx context.Context, kind pqueue.Kind, size int, ds *generator.Dataset) (Result, error) {
	base, err := newBase(kind, size, ds)
	if err != nil {
		return Result{}, err
	}

	targets, newPriorities := ds.Targets(size)
	if len(targets) == 0 {
		targets, newPriorities = []int{ds.Values[0]}, []int{ds.Priorities[0]}
	}

	sizeLabel := strconv.Itoa(size)
	observers := make(map[Operation]prometheus.Observer, len(Operations()))
	samples := make(map[Operation]stats.Float64Data, len(Operations()))
	for _, op := range Operations() {
		observers[op] = r.durations.WithLabelValues(string(kind), string(op), sizeLabel)
		samples[op] = make(stats.Float64Data, 0, r.cfg.Repetitions)
	}
	record := func(op Operation, ns int64) {
		samples[op] = append(samples[op], float64(ns))
		observers[op].Observe(float64(ns) / 1e9)
	}

	fingerprint := hash.Queue(base)
	log := r.log.With(zap.String("backend", string(kind)), zap.Int("size", size))
	log.Debug("benchmark started", zap.Int("repetitions", r.cfg.Repetitions))

	for rep := 0; rep < r.cfg.Repetitions; rep++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		cp := base.Clone()
		start := runtime.NanoTime()
		cp.Insert(size, ds.Priorities[rep%len(ds.Priorities)])
		record(OpInsert, runtime.Elapsed(start))

		cp = base.Clone()
		start = runtime.NanoTime()
		_, err := cp.ExtractMax()
		record(OpExtractMax, runtime.Elapsed(start))
		if err != nil {
			return Result{}, errors.Wrap(err, "extract max")
		}

		start = runtime.NanoTime()
		_, err = base.FindMax()
		record(OpFindMax, runtime.Elapsed(start))
		if err != nil {
			return Result{}, errors.Wrap(err, "find max")
		}

		k := rep % len(targets)
		cp = base.Clone()
		start = runtime.NanoTime()
		err = cp.ModifyKey(targets[k], newPriorities[k])
		record(OpModifyKey, runtime.Elapsed(start))
		if err != nil {
			return Result{}, errors.Wrap(err, "modify key")
		}

		start = runtime.NanoTime()
		_ = base.Size()
		record(OpSize, runtime.Elapsed(start))
	}

	if hash.Queue(base) != fingerprint {
		return Result{}, ErrBaseMutated
	}

	res := Result{Backend: kind, Size: size, Stats: make(map[Operation]Stat, len(samples))}
	for op, data := range samples {
		st, err := summarize(data)
		if err != nil {
			return Result{}, errors.Wrapf(err, "summarize %s", op)
		}
		res.Stats[op] = st
	}

	log.Info("benchmark finished",
		zap.Float64("insert_ns", res.Stats[OpInsert].Mean),
		zap.Float64("extract_max_ns", res.Stats[OpExtractMax].Mean),
		zap.Float64("modify_key_ns", res.Stats[OpModifyKey].Mean),
	)
	return res, nil
}
