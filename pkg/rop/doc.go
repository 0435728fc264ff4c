// Package rop provides a small railway-oriented Result[T] and a fluent
// Chain for running a fixed sequence of fallible stages.
//
// Key operations:
// - Success: construct a Result[T] with a fresh id
// - Start: begin a Chain from a value
// - Then: run a named stage returning (U, error); errors become *StageError
// - Map: run an infallible stage
// - Ensure: side effect on success without changing the result
// - Finally: collapse a Chain to a concrete value
//
// Every Result produced along one Chain shares the id of the Chain's first
// Result, so a whole run can be correlated in logs.
package rop
