package cio

import "sort"

// tableModel is the raw table produced by the builder: stringified cells,
// the number of leading header rows (0..2), and whether column 0 holds row
// labels. A model lives for a single render call.
type tableModel struct {
	rows       [][]string
	headerRows int
	labelCol   bool
}

// columns is the width of the widest row.
func (m *tableModel) columns() int {
	n := 0
	for _, row := range m.rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// normalize pads short rows with trailing blank cells so every row has the
// same cell count. Longer rows are never truncated.
func (m *tableModel) normalize() {
	n := m.columns()
	for i, row := range m.rows {
		for len(row) < n {
			row = append(row, "")
		}
		m.rows[i] = row
	}
}

func buildModel(v Value, headers []string) tableModel {
	s := classify(v)
	var m tableModel
	switch s {
	case shapeScalarList:
		m = buildScalarList(v)
	case shape2DArray:
		m = build2DArray(v)
	case shape3DFlatten:
		m = build3DFlatten(v)
	case shapeObjectList:
		m = buildObjectList(v)
	case shapeLabeledList:
		m = buildLabeledList(v)
	case shapeKeyValue:
		m = buildKeyValue(v, headers)
	case shapeObjectOfArrays:
		m = buildObjectOfArrays(v, headers)
	case shapeObjectNested:
		m = buildObjectNested(v)
	case shapeObjectHier:
		m = buildObjectHier(v)
	default:
		m = tableModel{rows: [][]string{{v.text()}}}
	}
	m.labelCol = hasLabelColumn(s)
	m.normalize()
	return m
}

func buildScalarList(v Value) tableModel {
	row := make([]string, v.Len())
	for i := range row {
		row[i] = v.Index(i).text()
	}
	return tableModel{rows: [][]string{row}}
}

func build2DArray(v Value) tableModel {
	rows := make([][]string, v.Len())
	for i := range rows {
		inner := v.Index(i)
		row := make([]string, inner.Len())
		for j := range row {
			row[j] = inner.Index(j).text()
		}
		rows[i] = row
	}
	return tableModel{rows: rows}
}

// build3DFlatten concatenates the innermost arrays of every middle array
// into data rows, in encounter order. A middle array with no array children
// contributes itself as one row.
func build3DFlatten(v Value) tableModel {
	var rows [][]string
	for i := 0; i < v.Len(); i++ {
		mid := v.Index(i)
		hasArrays := false
		for j := 0; j < mid.Len(); j++ {
			if mid.Index(j).Kind() == KindArray {
				hasArrays = true
				break
			}
		}
		if !hasArrays {
			row := make([]string, mid.Len())
			for j := range row {
				row[j] = mid.Index(j).text()
			}
			rows = append(rows, row)
			continue
		}
		for j := 0; j < mid.Len(); j++ {
			elem := mid.Index(j)
			if elem.Kind() != KindArray {
				rows = append(rows, []string{elem.text()})
				continue
			}
			row := make([]string, elem.Len())
			for k := range row {
				row[k] = elem.Index(k).text()
			}
			rows = append(rows, row)
		}
	}
	return tableModel{rows: rows}
}

func buildObjectList(v Value) tableModel {
	keys := keyUnionOfElements(v)
	rows := [][]string{keys}
	for i := 0; i < v.Len(); i++ {
		row := make([]string, len(keys))
		for c, k := range keys {
			if val, ok := v.Index(i).Lookup(k); ok {
				row[c] = val.text()
			}
		}
		rows = append(rows, row)
	}
	return tableModel{rows: rows, headerRows: 1}
}

// buildLabeledList transposes an array of objects where every element
// carries the blank-string key: that key's value names the element's column
// and the remaining keys become row labels.
func buildLabeledList(v Value) tableModel {
	header := make([]string, v.Len()+1)
	for i := 0; i < v.Len(); i++ {
		name, _ := v.Index(i).Lookup("")
		header[i+1] = name.text()
	}
	var labels []string
	seen := map[string]bool{"": true}
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		for j := 0; j < elem.Len(); j++ {
			if k := elem.Member(j).Key; !seen[k] {
				seen[k] = true
				labels = append(labels, k)
			}
		}
	}
	sort.Strings(labels)
	rows := [][]string{header}
	for _, label := range labels {
		row := make([]string, v.Len()+1)
		row[0] = label
		for i := 0; i < v.Len(); i++ {
			if val, ok := v.Index(i).Lookup(label); ok {
				row[i+1] = val.text()
			}
		}
		rows = append(rows, row)
	}
	return tableModel{rows: rows, headerRows: 1}
}

func buildKeyValue(v Value, headers []string) tableModel {
	var rows [][]string
	headerRows := 0
	if len(headers) == 2 {
		rows = append(rows, []string{headers[0], headers[1]})
		headerRows = 1
	}
	for i := 0; i < v.Len(); i++ {
		m := v.Member(i)
		rows = append(rows, []string{m.Key, m.Value.text()})
	}
	return tableModel{rows: rows, headerRows: headerRows}
}

func buildObjectOfArrays(v Value, headers []string) tableModel {
	header := make([]string, v.Len())
	maxLen := 0
	for i := 0; i < v.Len(); i++ {
		m := v.Member(i)
		header[i] = m.Key
		if i < len(headers) {
			header[i] = headers[i]
		}
		if m.Value.Len() > maxLen {
			maxLen = m.Value.Len()
		}
	}
	rows := [][]string{header}
	for r := 0; r < maxLen; r++ {
		row := make([]string, v.Len())
		for c := 0; c < v.Len(); c++ {
			if arr := v.Member(c).Value; r < arr.Len() {
				row[c] = arr.Index(r).text()
			}
		}
		rows = append(rows, row)
	}
	return tableModel{rows: rows, headerRows: 1}
}

func buildObjectNested(v Value) tableModel {
	header := make([]string, v.Len()+1)
	for i := 0; i < v.Len(); i++ {
		header[i+1] = v.Member(i).Key
	}
	labels := innerKeyUnion(v)
	rows := [][]string{header}
	for _, label := range labels {
		row := make([]string, v.Len()+1)
		row[0] = label
		for i := 0; i < v.Len(); i++ {
			if val, ok := v.Member(i).Value.Lookup(label); ok {
				row[i+1] = val.text()
			}
		}
		rows = append(rows, row)
	}
	return tableModel{rows: rows, headerRows: 1}
}

// buildObjectHier lays out a three-level object as two header rows: outer
// keys spanning their mid-level keys, then the flattened mid keys, with one
// data row per leaf key.
func buildObjectHier(v Value) tableModel {
	top := []string{""}
	mid := []string{""}
	type column struct{ outer, mid string }
	var cols []column
	for i := 0; i < v.Len(); i++ {
		om := v.Member(i)
		for j := 0; j < om.Value.Len(); j++ {
			mm := om.Value.Member(j)
			if j == 0 {
				top = append(top, om.Key)
			} else {
				top = append(top, "")
			}
			mid = append(mid, mm.Key)
			cols = append(cols, column{outer: om.Key, mid: mm.Key})
		}
	}

	var leaves []string
	seen := map[string]bool{}
	for i := 0; i < v.Len(); i++ {
		om := v.Member(i).Value
		for j := 0; j < om.Len(); j++ {
			leaf := om.Member(j).Value
			if leaf.Kind() != KindObject {
				continue
			}
			for k := 0; k < leaf.Len(); k++ {
				if key := leaf.Member(k).Key; !seen[key] {
					seen[key] = true
					leaves = append(leaves, key)
				}
			}
		}
	}
	sort.Strings(leaves)

	rows := [][]string{top, mid}
	for _, leaf := range leaves {
		row := make([]string, len(cols)+1)
		row[0] = leaf
		for c, col := range cols {
			outer, _ := v.Lookup(col.outer)
			midVal, ok := outer.Lookup(col.mid)
			if !ok || midVal.Kind() != KindObject {
				continue
			}
			if val, ok := midVal.Lookup(leaf); ok {
				row[c+1] = val.text()
			}
		}
		rows = append(rows, row)
	}
	return tableModel{rows: rows, headerRows: 2}
}

// keyUnionOfElements collects the keys of every object element, sorted.
func keyUnionOfElements(v Value) []string {
	var keys []string
	seen := map[string]bool{}
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		for j := 0; j < elem.Len(); j++ {
			if k := elem.Member(j).Key; !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// innerKeyUnion collects the keys of every member object, sorted.
func innerKeyUnion(v Value) []string {
	var keys []string
	seen := map[string]bool{}
	for i := 0; i < v.Len(); i++ {
		inner := v.Member(i).Value
		for j := 0; j < inner.Len(); j++ {
			if k := inner.Member(j).Key; !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}
