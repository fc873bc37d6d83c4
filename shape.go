package cio

// shape is the structural category of an input value. Classification is a
// closed set of predicates tried top-down; the first match wins and the
// table builder switches exhaustively over the result.
type shape int

const (
	shapeFallback   shape = iota // unclassifiable: single-cell literal
	shapeScalarList              // array of scalars: one data row
	shape2DArray                 // array of scalar arrays: one row each
	shape3DFlatten               // array of arrays of arrays: flatten two levels
	shapeObjectList              // array of objects: key union as headers
	shapeLabeledList             // array of objects with a blank-string key: transposed
	shapeKeyValue                // flat object: key and value columns
	shapeObjectOfArrays          // object of arrays: keys as headers, index rows
	shapeObjectNested            // object of flat objects: one header row
	shapeObjectHier              // object of objects of objects: two header rows
)

func classify(v Value) shape {
	switch v.Kind() {
	case KindArray:
		return classifyArray(v)
	case KindObject:
		return classifyObject(v)
	default:
		return shapeFallback
	}
}

func classifyArray(v Value) shape {
	allScalar := true
	allArray := v.Len() > 0
	allObject := v.Len() > 0
	for i := 0; i < v.Len(); i++ {
		switch v.Index(i).Kind() {
		case KindArray:
			allScalar, allObject = false, false
		case KindObject:
			allScalar, allArray = false, false
		default:
			allArray, allObject = false, false
		}
	}
	switch {
	case allScalar:
		return shapeScalarList
	case allArray:
		if arrayDepthBelow(v) >= 2 {
			return shape3DFlatten
		}
		if innerAllScalar(v) {
			return shape2DArray
		}
		return shapeFallback
	case allObject:
		if everyObjectHasBlankKey(v) {
			return shapeLabeledList
		}
		return shapeObjectList
	default:
		return shapeFallback
	}
}

func classifyObject(v Value) shape {
	allScalar := true
	allArray := v.Len() > 0
	allObject := v.Len() > 0
	for i := 0; i < v.Len(); i++ {
		switch v.Member(i).Value.Kind() {
		case KindArray:
			allScalar, allObject = false, false
		case KindObject:
			allScalar, allArray = false, false
		default:
			allArray, allObject = false, false
		}
	}
	switch {
	case allScalar:
		return shapeKeyValue
	case allArray:
		return shapeObjectOfArrays
	case allObject:
		for i := 0; i < v.Len(); i++ {
			inner := v.Member(i).Value
			for j := 0; j < inner.Len(); j++ {
				if inner.Member(j).Value.Kind() == KindObject {
					return shapeObjectHier
				}
			}
		}
		return shapeObjectNested
	default:
		return shapeFallback
	}
}

// arrayDepthBelow reports the deepest array nesting under an array of
// arrays: 1 for [[1]], 2 for [[[1]]].
func arrayDepthBelow(v Value) int {
	depth := 0
	for i := 0; i < v.Len(); i++ {
		inner := v.Index(i)
		for j := 0; j < inner.Len(); j++ {
			if inner.Index(j).Kind() == KindArray {
				if depth < 2 {
					depth = 2
				}
			} else if depth < 1 {
				depth = 1
			}
		}
	}
	return depth
}

func innerAllScalar(v Value) bool {
	for i := 0; i < v.Len(); i++ {
		inner := v.Index(i)
		for j := 0; j < inner.Len(); j++ {
			if inner.Index(j).isContainer() {
				return false
			}
		}
	}
	return true
}

func everyObjectHasBlankKey(v Value) bool {
	for i := 0; i < v.Len(); i++ {
		if _, ok := v.Index(i).Lookup(""); !ok {
			return false
		}
	}
	return true
}

// hasLabelColumn reports whether column 0 structurally holds row identifiers
// rather than data for the given shape. This replaces content sniffing: the
// classifier already knows which shapes put keys in column 0.
func hasLabelColumn(s shape) bool {
	switch s {
	case shapeLabeledList, shapeKeyValue, shapeObjectNested, shapeObjectHier:
		return true
	default:
		return false
	}
}
