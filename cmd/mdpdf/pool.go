package main

import (
	"fmt"

	mdpdf "github.com/nvell/mdpdf"
)

// poolAdapter narrows mdpdf.ConverterPool to the converterPool interface so
// batch code can be tested against stub pools.
type poolAdapter struct {
	pool *mdpdf.ConverterPool
}

// Compile-time check that poolAdapter implements converterPool.
var _ converterPool = (*poolAdapter)(nil)

// newConverterPool creates an adapter-wrapped pool of n converters.
func newConverterPool(n int, opts ...mdpdf.Option) *poolAdapter {
	return &poolAdapter{pool: mdpdf.NewConverterPool(n, opts...)}
}

func (a *poolAdapter) Acquire() (converterClient, error) {
	return a.pool.Acquire()
}

// Release returns a converter to the pool. Panics on a foreign type: only
// converters acquired from this adapter may come back through it.
func (a *poolAdapter) Release(c converterClient) {
	conv, ok := c.(*mdpdf.Converter)
	if !ok {
		panic(fmt.Sprintf("pool release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
