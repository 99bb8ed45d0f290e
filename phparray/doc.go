// Package phparray renders values as PHP short-array literal source text.
//
// # Data Model
//
// Literals: null, bool, number (including NaN and infinities), text
// Containers: sequence (ordered list), mapping (ordered, unique text keys)
//
// Values are built with the constructors in this package or converted from
// loosely typed input at the boundary (Go values, JSON, Lua tables). Only the
// boundary converters can fail; rendering a Value never does.
//
// # Output
//
//	[
//	    "zef",
//	    1,
//	    [
//	        "lol" => 5
//	    ],
//	    null,
//	    false
//	]
//
// Every container is multi-line. Indent, quote character and trailing
// commas are configurable; see Options.
//
// # Known Limitations
//
// The output is a faithful, minimal PHP literal:
//   - Both infinities render as INF (the sign is dropped)
//   - Mapping keys are quoted but never escaped
//   - Backslashes inside text are not doubled
//   - Only newline, tab and the quote character are escaped in text
package phparray
