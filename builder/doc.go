// Package builder demonstrates the Builder pattern for an entry with many
// optional fields.
//
// Two flavours are offered, because Go code uses both:
//
//   - HeavyEntryBuilder: a fluent builder that accumulates values and
//     produces an entry with Build. The builder is reusable; each Build
//     returns an independent value.
//   - Functional options: NewHeavyEntry(WithMField1("x"), ...), the idiom
//     used for configuration throughout Go libraries.
//
// The MField values can only be set while building. Field1..Field4 stay
// mutable afterwards through setters.
package builder
