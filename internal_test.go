package cio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	obj := func(ms ...Member) Value { return Object(ms...) }
	tests := map[string]struct {
		value Value
		want  shape
	}{
		"scalar":      {value: Int(1), want: shapeFallback},
		"empty array": {value: Array(), want: shapeScalarList},
		"scalar list": {value: Array(Int(1), String("a")), want: shapeScalarList},
		"2d array": {
			value: Array(Array(Int(1)), Array(Int(2))),
			want:  shape2DArray,
		},
		"3d array": {
			value: Array(Array(Array(Int(1))), Array(Array(Int(2)))),
			want:  shape3DFlatten,
		},
		"mixed array": {
			value: Array(Int(1), Array(Int(2))),
			want:  shapeFallback,
		},
		"array of objects": {
			value: Array(obj(Member{Key: "a", Value: Int(1)})),
			want:  shapeObjectList,
		},
		"labeled list": {
			value: Array(obj(Member{Key: "", Value: String("n")})),
			want:  shapeLabeledList,
		},
		"key-value": {
			value: obj(Member{Key: "a", Value: Int(1)}),
			want:  shapeKeyValue,
		},
		"object of arrays": {
			value: obj(Member{Key: "a", Value: Array(Int(1))}),
			want:  shapeObjectOfArrays,
		},
		"object nested": {
			value: obj(Member{Key: "a", Value: obj(Member{Key: "b", Value: Int(1)})}),
			want:  shapeObjectNested,
		},
		"object hierarchical": {
			value: obj(Member{Key: "a", Value: obj(
				Member{Key: "b", Value: obj(Member{Key: "c", Value: Int(1)})},
			)}),
			want: shapeObjectHier,
		},
		"mixed object": {
			value: obj(
				Member{Key: "a", Value: Int(1)},
				Member{Key: "b", Value: Array(Int(2))},
			),
			want: shapeFallback,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify(tt.value))
		})
	}
}

func TestColspans(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		row  []string
		want []int
	}{
		"no blanks":     {row: []string{"a", "b"}, want: []int{1, 1}},
		"trailing span": {row: []string{"a", "", ""}, want: []int{3, 0, 0}},
		"leading blank": {row: []string{"", "a", ""}, want: []int{1, 2, 0}},
		"two runs":      {row: []string{"a", "", "b", ""}, want: []int{2, 0, 2, 0}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := colspans(tt.row)
			assert.Equal(t, tt.want, got)
			// Non-zero spans always sum to the column count.
			sum := 0
			for _, s := range got {
				sum += s
			}
			assert.Equal(t, len(tt.row), sum)
		})
	}
}

func TestCellElements(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cell string
		want []string
	}{
		"bracketed":     {cell: "[1, 2, 3]", want: []string{"1", "2", "3"}},
		"nested":        {cell: "[[1, 2], [3]]", want: []string{"[1, 2]", "[3]"}},
		"quoted":        {cell: `["a, b", "c"]`, want: []string{"a, b", "c"}},
		"comma joined":  {cell: "a, b", want: []string{"a", "b"}},
		"plain scalar":  {cell: "abc", want: []string{"abc"}},
		"empty":         {cell: "", want: []string{""}},
		"empty list":    {cell: "[]", want: nil},
		"half brackets": {cell: "[a, b", want: []string{"[a", "b"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cellElements(tt.cell))
		})
	}
}

func TestNestingDepth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, nestingDepth("abc"))
	assert.Equal(t, 1, nestingDepth("[1, 2]"))
	assert.Equal(t, 2, nestingDepth("[[1], [2]]"))
	assert.Equal(t, 1, nestingDepth(`["[x]"]`), "brackets in quotes do not nest")
}

func TestTopLevelBrackets(t *testing.T) {
	t.Parallel()
	spans := topLevelBrackets("[1, [2]], [3]")
	require.Len(t, spans, 2)
	assert.Equal(t, [2]int{0, 7}, spans[0])
	assert.Equal(t, [2]int{10, 12}, spans[1])
}

func TestStripQuotes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab", stripQuotes(`"ab"`))
	assert.Equal(t, "ab", stripQuotes("ab"))
	assert.Equal(t, `"a`, stripQuotes(`"a`))
}

func TestIsBracketedList(t *testing.T) {
	t.Parallel()
	assert.True(t, isBracketedList("[1, 2]"))
	assert.True(t, isBracketedList("[[1], [2]]"))
	assert.False(t, isBracketedList("[1], [2]"))
	assert.False(t, isBracketedList("x"))
}

func TestAlignments(t *testing.T) {
	t.Parallel()
	m := tableModel{
		headerRows: 1,
		rows: [][]string{
			{"h", "", ""},
			{"a", "1", "x"},
			{"b", "", "2"},
		},
	}
	got := alignments(m)
	// Headed column centers; numeric column right-aligns with blanks
	// treated as neutral; anything else left-aligns.
	assert.Equal(t, []alignment{alignCenter, alignRight, alignLeft}, got)
}

func TestAlignmentsAllBlankColumn(t *testing.T) {
	t.Parallel()
	m := tableModel{rows: [][]string{{"a", ""}, {"b", ""}}}
	assert.Equal(t, []alignment{alignLeft, alignLeft}, alignments(m))
}

func TestColumnWidthsStripsColor(t *testing.T) {
	t.Parallel()
	m := tableModel{rows: [][]string{{"\x1b[31mab\x1b[0m", "你好"}}}
	// Color codes are invisible; wide runes count double.
	assert.Equal(t, []int{2, 4}, columnWidths(m, false))
}

func TestColumnWidthsEqualize(t *testing.T) {
	t.Parallel()
	m := tableModel{rows: [][]string{{"label", "1", "four"}}}
	assert.Equal(t, []int{5, 4, 4}, columnWidths(m, true))
}

func TestExpandArraysSkipsHeaderless(t *testing.T) {
	t.Parallel()
	m := tableModel{rows: [][]string{{"[1, 2]"}}}
	got := expandArrays(m)
	assert.Equal(t, m.rows, got.rows)
}

func TestExpandArraysKeepsColumnZero(t *testing.T) {
	t.Parallel()
	m := tableModel{
		headerRows: 1,
		rows: [][]string{
			{"h1", "h2"},
			{"[1, 2]", "[3, 4]"},
		},
	}
	got := expandArrays(m)
	require.Equal(t, [][]string{
		{"h1", "h2", ""},
		{"[1, 2]", "3", "4"},
	}, got.rows)
	assert.Equal(t, 1, got.headerRows)
}

func TestExpandArraysRagged(t *testing.T) {
	t.Parallel()
	m := tableModel{
		headerRows: 1,
		rows: [][]string{
			{"k", "v"},
			{"a", "[1, 2, 3]"},
			{"b", "plain"},
		},
	}
	got := expandArrays(m)
	assert.Equal(t, [][]string{
		{"k", "v", "", ""},
		{"a", "1", "2", "3"},
		{"b", "plain", "", ""},
	}, got.rows)
}

func TestBuild3DFlattenMixed(t *testing.T) {
	t.Parallel()
	v := Array(
		Array(Array(Int(1), Int(2)), Array(Int(3))),
		Array(Int(4), Int(5)), // no array children: contributes itself
	)
	m := buildModel(v, nil)
	assert.Equal(t, [][]string{
		{"1", "2"},
		{"3", ""},
		{"4", "5"},
	}, m.rows)
	assert.Equal(t, 0, m.headerRows)
}

func TestBuildModelFallback(t *testing.T) {
	t.Parallel()
	m := buildModel(Bool(true), nil)
	assert.Equal(t, [][]string{{"true"}}, m.rows)
	assert.False(t, m.labelCol)
}

func TestBuildModelLabelColumn(t *testing.T) {
	t.Parallel()
	kv := Object(Member{Key: "a", Value: Int(1)})
	assert.True(t, buildModel(kv, nil).labelCol)

	list := Array(Object(Member{Key: "a", Value: Int(1)}))
	assert.False(t, buildModel(list, nil).labelCol)
}

func TestValueText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value Value
		want  string
	}{
		"null":   {value: Null(), want: ""},
		"bool":   {value: Bool(false), want: "false"},
		"number": {value: Number("1.50"), want: "1.50"},
		"array":  {value: Array(Int(1), String("a")), want: "[1, a]"},
		"object in cell": {
			value: Array(Object(Member{Key: "k", Value: Int(1)})),
			want:  "[[object]]",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.value.text())
		})
	}
}

func TestAlignText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", alignText("ab", 5, alignLeft))
	assert.Equal(t, "   ab", alignText("ab", 5, alignRight))
	assert.Equal(t, " ab  ", alignText("ab", 5, alignCenter))
	assert.Equal(t, "abc", alignText("abc", 2, alignLeft), "never truncates")
}

func TestHeaderColorWraps(t *testing.T) {
	t.Parallel()
	assert.Equal(t, DefaultTheme.Header[0], DefaultTheme.headerColor(3))
	assert.Equal(t, DefaultTheme.Header[1], DefaultTheme.headerColor(4))
}

func TestNormalizePadsShortRows(t *testing.T) {
	t.Parallel()
	m := tableModel{rows: [][]string{{"a", "b", "c"}, {"d"}}}
	m.normalize()
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "", ""}}, m.rows)
}
