package almanac

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type iv = Interval[int]

func TestIntervalBasics(t *testing.T) {
	a := Span(10, 5)
	assert.Equal(t, iv{10, 15}, a)
	assert.Equal(t, 5, a.Len())
	assert.False(t, a.Empty())
	assert.True(t, iv{3, 3}.Empty())
	assert.True(t, a.Contains(10))
	assert.True(t, a.Contains(14))
	assert.False(t, a.Contains(15))
	assert.False(t, a.Contains(9))
	assert.Equal(t, "[10,15)", a.String())
	assert.Equal(t, iv{13, 18}, a.Shift(3))
	assert.Equal(t, iv{6, 11}, a.Shift(-4))
}

func TestIntervalIntersect(t *testing.T) {
	tests := []struct {
		a, b iv
		want iv
		ok   bool
	}{
		{iv{0, 10}, iv{5, 15}, iv{5, 10}, true},
		{iv{5, 15}, iv{0, 10}, iv{5, 10}, true},
		{iv{0, 10}, iv{2, 4}, iv{2, 4}, true},
		{iv{0, 10}, iv{10, 20}, iv{}, false},
		{iv{0, 10}, iv{-5, 0}, iv{}, false},
	}
	for _, tt := range tests {
		got, ok := tt.a.Intersect(tt.b)
		assert.Equal(t, tt.ok, ok, "%v ∩ %v", tt.a, tt.b)
		if ok {
			assert.Equal(t, tt.want, got, "%v ∩ %v", tt.a, tt.b)
		}
	}
}

func TestUnsignedShiftDown(t *testing.T) {
	e := NewEntry[uint64](10, 50, 5)
	tbl, err := NewTable("down", []Entry[uint64]{e})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, uint64(12), tbl.Map(52))
	got := tbl.MapRanges([]Interval[uint64]{{50, 55}})
	assert.Equal(t, []Interval[uint64]{{10, 15}}, got)
}

func TestCoalesce(t *testing.T) {
	in := []iv{{20, 25}, {0, 5}, {5, 8}, {3, 4}, {30, 30}, {24, 28}, {10, 12}}
	want := []iv{{0, 8}, {10, 12}, {20, 28}}
	if diff := cmp.Diff(want, Coalesce(in)); diff != "" {
		t.Errorf("Coalesce mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, iv{20, 25}, in[0], "input modified")
	assert.Empty(t, Coalesce[int](nil))
}

func TestTotalLen(t *testing.T) {
	assert.Equal(t, 0, TotalLen[int](nil))
	assert.Equal(t, 9, TotalLen([]iv{{0, 4}, {10, 15}, {7, 7}}))
}
