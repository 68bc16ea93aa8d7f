package ocasdk

// Package ocasdk validates JSON data payloads against the resolved
// attribute table of an OCA bundle.
//
// The schema side (bundle loading, SAID verification, overlay parsing) is
// an external collaborator; this package consumes a name->Attribute table
// and reports, per data record, every attribute whose value violates its
// declared type, conformance, or entry-code constraint.
//
// Design policy:
// - Keep only public APIs in the root package; put payload decoders under source/.
// - Validation never mutates its inputs and holds no state across calls, so
//   concurrent calls over the same attribute table need no coordination.
//
// Typical usage:
//
//  info := ocasdk.NewBundleInfo(attrs)
//  status, err := info.ValidateBytes(record)
//  if err != nil { ... }           // malformed input, no attribute detail
//  if !status.Valid() {
//      for _, msg := range status.Errors().Messages() { ... }
//  }
//
