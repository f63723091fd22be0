// Package codegen renders key and ciphertext bytes as source code constants.
//
// Output is produced from a small per-language Dialect descriptor, so the same
// Render call serves every target. Rendering is pure: identical inputs always
// produce byte-identical text, and nothing time or order dependent is emitted.
package codegen
