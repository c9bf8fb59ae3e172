// Package random provides per-goroutine pseudo-random generators and the
// samplers built on them.
//
// Go has no thread-local storage, so a goroutine's generator is an explicit
// handle, *Local, that the goroutine owns and never shares. A Registry hands
// out handles and decides which engine and entropy source back them. Group
// spawns goroutines that each receive their own handle, released when the
// goroutine's function returns:
//
//	g, ctx := random.Default.NewGroup(ctx)
//	for i := 0; i < workers; i++ {
//		g.Go(func(ctx context.Context, l *random.Local) error {
//			hit := random.Bernoulli(l, 0.3)
//			...
//		})
//	}
//	err := g.Wait()
//
// No generator is ever guarded by a lock. Handles are not safe for concurrent
// use; passing one to another goroutine is a bug.
//
// Samplers are package functions rather than methods so they can be generic
// over the floating-point kind:
//
//	x := random.Uniform[float32](l)
//	pick, err := random.WeightedSelect(l, []float64{0.2, 0.5}, []string{"a", "b"}, "none")
package random
