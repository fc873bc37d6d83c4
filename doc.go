// Package cio renders structured data as Unicode-bordered, colored tables
// and provides styled console formatting helpers.
//
// The central entry point is [Render], which takes a generic [Value] tree
// and infers the table structure from its shape: a flat array becomes a
// single data row, an array of arrays a grid, an array of objects a headed
// table with the key union as columns, and a three-level object a table
// with two header rows where outer keys span their children. No structural
// hints are needed from the caller beyond optional custom headers.
//
//	v := cio.ValueOf(map[string]string{"France": "Paris", "Italy": "Rome"})
//	fmt.Print(cio.Render(v, []string{"Country", "Capital"}, cio.Options{}))
//
// # Values
//
// A [Value] is a tagged union over null, bool, number, string, array, and
// object with ordered keys. Build one explicitly with the constructors
// ([Array], [Object], [Int], ...), from any Go value with [ValueOf], or
// from a YAML/JSON document with [FromYAML], which keeps key order.
//
// # Options
//
// [Options] tunes a render call:
//
//   - EqualizeColumns — force all columns after the first to one width
//   - ExpandArrays — split list-valued cells into spanned sub-columns
//   - Theme — swap the ANSI palette (default [DefaultTheme])
//
// Rendering never fails: an empty value yields an empty string and an
// unclassifiable one a single-cell box. Callers that cannot produce a
// [Value] at all use [RenderFallback] with literal text.
//
// # Styled output
//
// [Sprintf], [Fprintf], and [Printf] accept fmt format strings with inline
// @(...) style tags:
//
//	cio.Printf("@(green, bold)done@() in %.1fs\n", secs)
//
// [StyleCode] exposes the underlying color and style vocabulary.
//
// # Container helpers
//
// [FormatContainer] pretty-prints nested arrays by bracket depth,
// [FormatMatrix] draws a 2D array between tall parentheses, and
// [FormatDeterminant] between vertical bars.
package cio
