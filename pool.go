package mdpdf

import (
	"runtime"
	"sync"
)

// Bounds for automatic pool sizing.
const (
	// MinPoolSize keeps at least one worker even on single-core hosts.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent browser launches to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor reserves CPU headroom for the Chrome processes each
	// conversion spawns.
	cpuDivisor = 2
)

// ConverterPool manages a fixed set of Converter instances for parallel
// batch processing. Each conversion launches its own browser, so the pool
// bounds concurrent engine launches while reusing parsed layout templates
// and loaded assets across jobs. Converters are created lazily on first
// acquire to avoid startup delay.
type ConverterPool struct {
	size       int
	opts       []Option
	converters []*Converter
	sem        chan *Converter
	mu         sync.Mutex
	created    int
	closed     bool
}

// NewConverterPool creates a pool with capacity for n Converter instances,
// each constructed with the given options. Converters are created lazily
// when acquired, not at pool creation.
func NewConverterPool(n int, opts ...Option) *ConverterPool {
	if n < 1 {
		n = 1
	}

	return &ConverterPool{
		size:       n,
		opts:       opts,
		converters: make([]*Converter, 0, n),
		sem:        make(chan *Converter, n),
	}
}

// Acquire returns a converter, constructing one lazily while the pool is
// below capacity and otherwise blocking until a release. A construction
// failure frees the reserved slot so a later acquire can retry. Returns
// ErrPoolClosed once Close has been called; Close also unblocks every
// acquire already waiting.
func (p *ConverterPool) Acquire() (*Converter, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	p.mu.Unlock()

	// A parked converter is the cheap path.
	select {
	case c, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return c, nil
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Construction stays outside the lock: it reads assets and parses
		// templates.
		c, err := NewConverter(p.opts...)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}

		p.mu.Lock()
		p.converters = append(p.converters, c)
		p.mu.Unlock()

		return c, nil
	}
	p.mu.Unlock()

	// Capacity reached: block until a converter is released or the pool
	// closes under us.
	c, ok := <-p.sem
	if !ok {
		return nil, ErrPoolClosed
	}
	return c, nil
}

// Release parks a converter for reuse. Releasing nil or releasing into a
// closed pool is a no-op.
func (p *ConverterPool) Release(c *Converter) {
	if c == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	// cap(sem) equals the pool size and at most created <= size converters
	// exist, so the send cannot block while the lock is held. Holding it
	// keeps a concurrent Close from closing the channel mid-send.
	p.sem <- c
}

// Close shuts the pool down. Converters hold no persistent engine resources
// (each conversion launches and closes its own browser), so closing only
// invalidates the pool and wakes blocked acquires.
func (p *ConverterPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	close(p.sem)
	return nil
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size for a batch run: an explicit
// workers count is used as given, zero or negative derives the size from
// the CPU count. Exported for CLIs and servers embedding the library.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS rather than NumCPU so container CPU quotas (applied via
	// automaxprocs) are respected.
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
