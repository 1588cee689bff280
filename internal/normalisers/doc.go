// Package normalisers converts raw source records into Artifacts.
//
// Each function is a pure transform: it assigns the per-kind score prior,
// derives lowercase semantic keywords deterministically from the record,
// and reports ok=false for records missing required fields so the caller
// can skip them without failing the batch.
package normalisers
