// SPDX-License-Identifier: MIT
package matrix_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConcurrentReads runs every read-only operation on one shared instance
// from several goroutines. Run with -race: no operation may write to its
// operand.
func TestConcurrentReads(t *testing.T) {
	t.Parallel()

	A := MustNew(t, [][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}})
	snapshot := A.Grid()

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers*4)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := A.Determinant(); err != nil {
				errs <- err
			}
			if _, err := A.Inverse(); err != nil {
				errs <- err
			}
			if _, err := A.Mul(A); err != nil {
				errs <- err
			}
			if _, err := A.Add(A.T()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, snapshot, A.Grid())
}
