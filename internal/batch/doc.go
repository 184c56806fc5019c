// Package batch implements the batch retrieval engine.
//
// The engine drives one paginated fetch per security code across a code
// universe, pacing requests through a shared rate gate, tolerating and
// counting per-code failures, filtering date-scoped rows through the trading
// calendar, and re-tagging rows with canonical codes. Output preserves code
// iteration order; within one code, page order. Concurrency above 1 keeps
// both guarantees: the rate gate is global across workers and results are
// buffered by position before flattening.
package batch
