// Package model defines shared data types used across the fetcher.
//
// Conventions:
//   - Records: flat key→value rows exactly as the API returned them
//   - Security codes: 4-character canonical form everywhere user-facing,
//     5-character API form only on the wire
//   - IDs: uuid.UUID for batch run IDs
package model
