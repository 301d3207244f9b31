package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendID(t *testing.T) {
	list := []int64{1, 2}
	list = AppendID(list, 3)
	assert.Equal(t, []int64{1, 2, 3}, list)
	// appending again must not duplicate
	list = AppendID(list, 3)
	assert.Equal(t, []int64{1, 2, 3}, list)
}

func TestRemoveID(t *testing.T) {
	assert.Equal(t, []int64{1, 3}, RemoveID([]int64{1, 2, 3}, 2))
	assert.Equal(t, []int64{1, 2, 3}, RemoveID([]int64{1, 2, 3}, 9))
	assert.Equal(t, []int64{}, RemoveID(nil, 1))
}

func TestDiffIDs(t *testing.T) {
	tests := []struct {
		name    string
		old     []int64
		new     []int64
		added   []int64
		removed []int64
	}{
		{"disjoint", []int64{1, 2}, []int64{3, 4}, []int64{3, 4}, []int64{1, 2}},
		{"unchanged", []int64{1, 2}, []int64{2, 1}, []int64{}, []int64{}},
		{"grow", []int64{1}, []int64{1, 2}, []int64{2}, []int64{}},
		{"shrink", []int64{1, 2}, []int64{1}, []int64{}, []int64{2}},
		{"empty old", nil, []int64{5}, []int64{5}, []int64{}},
		{"empty new", []int64{5}, nil, []int64{}, []int64{5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, removed := DiffIDs(tt.old, tt.new)
			assert.Equal(t, tt.added, added)
			assert.Equal(t, tt.removed, removed)
		})
	}
}
