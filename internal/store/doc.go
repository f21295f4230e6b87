// Package store handles the persisted form of a resume: a YAML document
// encoding the contact header and the ordered sections/items tree.
//
// Serialization is deterministic and order-preserving — sections and items
// keep their model order, and yaml.v3 emits item field keys sorted — so
// Decode(Encode(r)) reconstructs a document equal to r for every valid r.
//
// The package also imports the JSON files written by the legacy desktop
// application, using github.com/tidwall/jsonc to tolerate comments and
// trailing commas before parsing with the standard encoding/json library.
package store
