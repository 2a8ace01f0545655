package main

import (
	"context"

	"github.com/printmd/printmd"
)

// Renderer is the slice of the service API that batch workers need.
type Renderer interface {
	ToPDF(ctx context.Context, input printmd.Input) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*printmd.Service)(nil)

// Pool abstracts renderer pooling so batch tests can substitute fakes
// without launching browsers.
type Pool interface {
	Acquire() Renderer
	Release(Renderer)
	Size() int
}

// rendererPool adapts the library's service pool to the Pool interface.
type rendererPool struct {
	inner *printmd.ServicePool
}

var _ Pool = (*rendererPool)(nil)

func newRendererPool(n int, opts ...printmd.Option) *rendererPool {
	return &rendererPool{inner: printmd.NewServicePool(n, opts...)}
}

func (p *rendererPool) Acquire() Renderer {
	return p.inner.Acquire()
}

func (p *rendererPool) Release(r Renderer) {
	if svc, ok := r.(*printmd.Service); ok {
		p.inner.Release(svc)
	}
}

func (p *rendererPool) Size() int {
	return p.inner.Size()
}

// Close shuts down all pooled services and their browsers.
func (p *rendererPool) Close() error {
	return p.inner.Close()
}
