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

package floats

// MatMulNaive accumulates the product of two n×n matrices into c: C += A * B.
// Loops run in i-k-j order so the inner loop walks a row of B and a row of C.
// c is not cleared, so callers zero it first to get a fresh product. a, b and
// c must not overlap.
func MatMulNaive(a, b, c []float32, n int) {
	if len(a) < n*n || len(b) < n*n || len(c) < n*n {
		panic("floats: matrix smaller than n*n")
	}
	for i := 0; i < n; i++ {
		ci := c[i*n : (i+1)*n]
		for k := 0; k < n; k++ {
			// C_i += A_{ik} * B_k
			mulConstAdd(b[k*n:(k+1)*n], a[i*n+k], ci)
		}
	}
}
