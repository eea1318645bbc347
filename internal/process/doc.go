// Package process implements the row processing engine: predicate
// filtering, single-column aggregation, and sort ordering over an
// in-memory tabular dataset.
//
// Rows are maps from column name to raw cell text. Every comparison goes
// through the same coercion rule: two cells compare numerically only when
// both parse as numbers, otherwise they compare as case-sensitive text.
//
// # Basic Usage
//
//	processor := process.New(table.Header, table.Rows)
//	result, err := processor.Run(process.Options{
//	    Where:   "price>500",
//	    OrderBy: "rating=desc",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A Result holds either a dataset (filtered and/or sorted rows) or a
// Scalar aggregate. When both an aggregate and a sort are requested in
// one run, the aggregate takes precedence.
//
// # Supported Operations
//
// Filter expressions: column<op>value with op one of >=, <=, !=, >, <, =.
//
// Match expressions: boolean expressions in go-bexpr grammar (equality,
// membership, regex matching), e.g. `brand == "apple" or brand == "xiaomi"`.
//
// Aggregate expressions: column=function with function one of avg, min,
// max, median, sum, count.
//
// Sort expressions: column=direction with direction asc or desc.
//
// # Error Handling
//
// Invalid user input (bad expressions, unknown columns, unsupported
// functions, datasets an operation cannot apply to) is reported as a
// *ValidationError; errors.As distinguishes it from file-level failures.
package process
