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

// Package floats provides primitives on flat slices of 32-bit floats. Square
// matrices are stored row-major: element (i, j) of an n×n matrix lives at
// offset i*n+j.
package floats

import "github.com/chewxy/math32"

func mulConstAdd(a []float32, c float32, dst []float32) {
	for i := range a {
		dst[i] += a[i] * c
	}
}

func maxAbsDiff(a, b []float32) (ret float32) {
	for i := range a {
		ret = math32.Max(ret, math32.Abs(a[i]-b[i]))
	}
	return
}

// Zero fills zeros in a slice of 32-bit floats.
func Zero(a []float32) {
	for i := range a {
		a[i] = 0
	}
}

// MulConstAdd multiplies a vector and a const, then adds to dst: dst = dst + a * c
func MulConstAdd(a []float32, c float32, dst []float32) {
	if len(a) != len(dst) {
		panic("floats: slice lengths do not match")
	}
	mulConstAdd(a, c, dst)
}

// MaxAbsDiff returns the largest absolute element-wise difference between two
// vectors, which is the infinity norm of a - b. It returns 0 for empty vectors.
func MaxAbsDiff(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("floats: slice lengths do not match")
	}
	return maxAbsDiff(a, b)
}

// Identity overwrites the n×n matrix m with the identity matrix.
func Identity(m []float32, n int) {
	Zero(m)
	for i := 0; i < n; i++ {
		m[i*n+i] = 1
	}
}
