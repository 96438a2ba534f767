// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package benchmark times the naive matrix multiplication and checks it
// against the identity matrix.
package benchmark

import (
	"fmt"
	"io"
	"time"

	"github.com/gorse-io/matbench/base"
	"github.com/gorse-io/matbench/base/log"
	"github.com/gorse-io/matbench/common/floats"
	"github.com/gorse-io/matbench/config"
	"github.com/klauspost/cpuid/v2"
	"go.uber.org/zap"
)

// Result of a benchmark run.
type Result struct {
	N          int
	MaxAbsDiff float32
	Elapsed    time.Duration
}

// Milliseconds returns the elapsed time in fractional milliseconds.
func (r Result) Milliseconds() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// WriteTo prints the result as two lines. Floats use six significant digits.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "N=%d  check(A*I≈A) max_abs_diff=%.6g\ntime_ms=%.6g\n",
		r.N, r.MaxAbsDiff, r.Milliseconds())
	return int64(n), err
}

type MatrixBenchmark struct {
	config *config.BenchmarkConfig
}

func NewMatrixBenchmark(cfg *config.BenchmarkConfig) *MatrixBenchmark {
	return &MatrixBenchmark{config: cfg}
}

// Check multiplies a random matrix by the identity matrix and returns the
// largest deviation of the product from the random matrix.
func (b *MatrixBenchmark) Check(a, identity, c []float32, n int) float32 {
	base.NewRandomGenerator(b.config.SeedA).FillUniform(a, -1, 1)
	floats.Identity(identity, n)
	floats.Zero(c)
	floats.MatMulNaive(a, identity, c, n)
	return floats.MaxAbsDiff(a, c)
}

// Time warms up and then times a single multiplication C = A * B.
func (b *MatrixBenchmark) Time(a, m, c []float32, n int) time.Duration {
	floats.Zero(c)
	for i := 0; i < b.config.WarmupRounds; i++ {
		floats.MatMulNaive(a, m, c, n)
	}
	floats.Zero(c)
	start := time.Now()
	floats.MatMulNaive(a, m, c, n)
	return time.Since(start)
}

// Run runs the identity check and the timed multiplication on n×n matrices.
// A negative n allocates n² elements but the loops never run, so the identity
// check reports the largest magnitude in A. It panics if n*n overflows int.
func (b *MatrixBenchmark) Run(n int) Result {
	size := n * n
	if n != 0 && size/n != n {
		panic("benchmark: matrix size overflows int")
	}
	log.Logger().Debug("start matrix benchmark",
		zap.Int("n", n),
		zap.Int64("seed_a", b.config.SeedA),
		zap.Int64("seed_b", b.config.SeedB),
		zap.Int("warmup_rounds", b.config.WarmupRounds),
		zap.String("cpu", cpuid.CPU.BrandName),
		zap.Int("physical_cores", cpuid.CPU.PhysicalCores))
	a := make([]float32, size)
	m := make([]float32, size)
	c := make([]float32, size)

	diff := b.Check(a, m, c, n)
	log.Logger().Debug("complete identity check", zap.Float32("max_abs_diff", diff))

	base.NewRandomGenerator(b.config.SeedB).FillUniform(m, -1, 1)
	elapsed := b.Time(a, m, c, n)
	log.Logger().Debug("complete matrix multiplication", zap.Duration("elapsed", elapsed))
	return Result{N: n, MaxAbsDiff: diff, Elapsed: elapsed}
}
