// Package writer serializes batch results to flat files.
//
// Two CSV header policies exist: fixed headers (a predeclared field list,
// missing fields rendered as "N/A") for the data kinds whose schema is known
// in advance, and dynamic headers (derived from the first record) for the
// kinds whose upstream schema is not fully stable. CSV files carry a UTF-8
// BOM so spreadsheet tools detect the encoding.
package writer
