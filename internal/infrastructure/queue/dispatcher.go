package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"

	"github.com/homeservices/directory/internal/core/ports"
	"github.com/homeservices/directory/internal/metrics"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

var ErrDispatcherStopped = errors.New("dispatcher stopped")

type job struct {
	ctx  context.Context
	key  string
	fn   func(ctx context.Context)
	done chan struct{}
}

// Dispatcher routes jobs to a fixed set of workers using consistent hashing on
// the job key, guaranteeing that jobs sharing a key run one at a time in
// submission order. Used to serialize favorite toggles per provider.
type Dispatcher struct {
	workers []chan job
	log     zerolog.Logger

	wg       conc.WaitGroup
	cancel   context.CancelFunc
	quit     chan struct{}
	stopOnce sync.Once
}

var _ ports.KeyedExecutor = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan job, numWorkers),
		log:     log,
		quit:    make(chan struct{}),
	}
	for i := range d.workers {
		d.workers[i] = make(chan job, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or Stop is called.
func (d *Dispatcher) Start(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(ctx)
	for i, ch := range d.workers {
		d.wg.Go(func() { d.runWorker(ctx, i, ch) })
	}
}

// Stop cancels the workers and waits for the running jobs to return.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.quit)
		if d.cancel != nil {
			d.cancel()
		}
	})
	d.wg.Wait()
}

// Do enqueues fn on the worker responsible for key and blocks until it has
// run. It returns early with ctx.Err() if the caller gives up, in which case
// fn may still run later with the cancelled context.
func (d *Dispatcher) Do(ctx context.Context, key string, fn func(ctx context.Context)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j := job{ctx: ctx, key: key, fn: fn, done: make(chan struct{})}
	idx := d.shardIndex(key)

	select {
	case d.workers[idx] <- j:
		metrics.DispatcherQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	case <-ctx.Done():
		return ctx.Err()
	case <-d.quit:
		return ErrDispatcherStopped
	}

	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.quit:
		return ErrDispatcherStopped
	}
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan job) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-ch:
			if !ok {
				return
			}
			metrics.DispatcherQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.run(id, j)
		}
	}
}

func (d *Dispatcher) run(id int, j job) {
	defer close(j.done)
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().
				Interface("panic", r).
				Str("key", j.key).
				Int("worker_id", id).
				Msg("dispatcher job panicked")
		}
	}()

	if err := j.ctx.Err(); err != nil {
		d.log.Debug().Err(err).Str("key", j.key).Int("worker_id", id).Msg("skipping abandoned job")
		return
	}
	j.fn(j.ctx)
}
