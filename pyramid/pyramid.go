// Package pyramid arranges integers into a triangle.
package pyramid

import (
	"errors"
	"math"
	"slices"
	"strconv"
)

// ErrCannotBuild is the error every BuildError unwraps to.
var ErrCannotBuild = errors.New("pyramid: cannot build")

// BuildError describes why a pyramid could not be built. It unwraps to
// ErrCannotBuild.
type BuildError struct {
	// Len is the number of elements given.
	Len int
	// Nil is the index of the first nil element, or -1 if the count of
	// elements was the problem.
	Nil int
}

func (err *BuildError) Error() string {
	if err.Nil >= 0 {
		return "pyramid: nil element at index " + strconv.Itoa(err.Nil)
	}
	return "pyramid: " + strconv.Itoa(err.Len) + " elements is not a triangular number"
}

func (err *BuildError) Unwrap() error {
	return ErrCannotBuild
}

// Rows returns the number of rows k >= 1 of a pyramid with n elements, i.e.
// the k with n = k(k+1)/2. The boolean is false if there is no such k.
func Rows(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	// 8n+1 = (2k+1)^2. The float square root is exact enough to land within
	// one of the answer.
	d := int(math.Sqrt(8*float64(n) + 1))
	for d*d > 8*n+1 {
		d--
	}
	for (d+1)*(d+1) <= 8*n+1 {
		d++
	}
	if d*d != 8*n+1 {
		return 0, false
	}
	return (d - 1) / 2, true
}

// Build sorts the elements and places them in a grid of k rows and 2k-1
// columns, smallest at the top. Row i holds i+1 values, centered and
// separated by vacant cells, which are zero. nums is not modified.
//
// The result is a *BuildError if any element is nil or if len(nums) is not
// a triangular number, including when it is zero.
func Build(nums []*int) ([][]int, error) {
	v := make([]int, len(nums))
	for i, p := range nums {
		if p == nil {
			return nil, &BuildError{Len: len(nums), Nil: i}
		}
		v[i] = *p
	}
	return build(v)
}

// BuildInts is like Build for a slice with no missing elements.
func BuildInts(nums []int) ([][]int, error) {
	return build(slices.Clone(nums))
}

// build arranges v, which it sorts in place.
func build(v []int) ([][]int, error) {
	k, ok := Rows(len(v))
	if !ok {
		return nil, &BuildError{Len: len(v), Nil: -1}
	}
	slices.Sort(v)
	cols := 2*k - 1
	cells := make([]int, k*cols)
	grid := make([][]int, k)
	n := 0
	for i := range grid {
		grid[i] = cells[i*cols : (i+1)*cols : (i+1)*cols]
		for j := k - 1 - i; n < len(v) && j <= k-1+i; j += 2 {
			grid[i][j] = v[n]
			n++
		}
	}
	return grid, nil
}
