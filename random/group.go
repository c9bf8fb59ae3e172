package random

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group runs functions on their own goroutines, each with a private
// generator. It is an errgroup.Group whose callbacks also receive a *Local.
type Group struct {
	reg *Registry
	eg  *errgroup.Group
	ctx context.Context
}

// NewGroup returns a Group and a derived context that is cancelled when the
// first function returns an error or Wait returns.
func (r *Registry) NewGroup(ctx context.Context) (*Group, context.Context) {
	eg, ctx := errgroup.WithContext(ctx)
	return &Group{reg: r, eg: eg, ctx: ctx}, ctx
}

// SetLimit bounds the number of active goroutines. A negative value removes
// the limit.
func (g *Group) SetLimit(n int) {
	g.eg.SetLimit(n)
}

// Go calls fn on a new goroutine with a fresh handle. The handle is released
// when fn returns and must not escape it.
func (g *Group) Go(fn func(ctx context.Context, l *Local) error) {
	g.eg.Go(func() error {
		l := g.reg.NewLocal()
		defer l.release()
		return fn(g.ctx, l)
	})
}

// Wait blocks until every function has returned and reports the first error.
func (g *Group) Wait() error {
	return g.eg.Wait()
}
