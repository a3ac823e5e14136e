package nshape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProduct(t *testing.T) {
	tests := []struct {
		name    string
		extents []int
		want    int
		wantErr bool
	}{
		{
			name:    "empty product is one",
			extents: nil,
			want:    1,
		},
		{
			name:    "single dimension",
			extents: []int{7},
			want:    7,
		},
		{
			name:    "three dimensions",
			extents: []int{5, 4, 3},
			want:    60,
		},
		{
			name:    "zero extent rejected",
			extents: []int{5, 0},
			wantErr: true,
		},
		{
			name:    "negative extent rejected",
			extents: []int{-1},
			wantErr: true,
		},
		{
			name:    "overflow rejected",
			extents: []int{math.MaxInt / 2, 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Product(tt.extents)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCheckMulOverflow(t *testing.T) {
	require.NoError(t, CheckMulOverflow(0, math.MaxInt))
	require.NoError(t, CheckMulOverflow(math.MaxInt, 1))
	require.Error(t, CheckMulOverflow(math.MaxInt, 2))
	require.Error(t, CheckMulOverflow(math.MaxInt/2+1, 2))
}

func TestStrides(t *testing.T) {
	tests := []struct {
		name    string
		extents []int
		want    []int
	}{
		{
			name:    "zero rank",
			extents: nil,
			want:    []int{},
		},
		{
			name:    "one dimension",
			extents: []int{9},
			want:    []int{1},
		},
		{
			name:    "row major last varies fastest",
			extents: []int{5, 4, 3},
			want:    []int{12, 3, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Strides(tt.extents))
		})
	}
}

func TestFlatOffset(t *testing.T) {
	strides := Strides([]int{5, 4, 3})

	require.Equal(t, 0, FlatOffset([]int{0, 0, 0}, strides))
	require.Equal(t, 1, FlatOffset([]int{0, 0, 1}, strides))
	require.Equal(t, 3, FlatOffset([]int{0, 1, 0}, strides))
	require.Equal(t, 12, FlatOffset([]int{1, 0, 0}, strides))
	require.Equal(t, 5*4*3-1, FlatOffset([]int{4, 3, 2}, strides))
}
