//go:build bench

package printmd

import (
	"fmt"
	"runtime"
	"testing"
)

// prewarm fills the pool so the benchmarks measure reuse, not creation.
func prewarm(pool *ServicePool) {
	size := pool.Size()
	services := make([]*Service, size)
	for i := 0; i < size; i++ {
		services[i] = pool.Acquire()
	}
	for i := 0; i < size; i++ {
		pool.Release(services[i])
	}
}

// BenchmarkServicePoolAcquireRelease benchmarks the uncontended cycle.
func BenchmarkServicePoolAcquireRelease(b *testing.B) {
	sizes := []int{1, 2, 4, 8}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			pool := NewServicePool(size)
			prewarm(pool)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				svc := pool.Acquire()
				pool.Release(svc)
			}

			b.StopTimer()
			pool.Close()
		})
	}
}

// BenchmarkServicePoolParallel benchmarks the cycle under GOMAXPROCS-wide
// contention.
func BenchmarkServicePoolParallel(b *testing.B) {
	pool := NewServicePool(runtime.GOMAXPROCS(0))
	prewarm(pool)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			svc := pool.Acquire()
			pool.Release(svc)
		}
	})

	b.StopTimer()
	pool.Close()
}

// BenchmarkResolvePoolSize benchmarks pool size calculation.
func BenchmarkResolvePoolSize(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = ResolvePoolSize(0)
	}
}
