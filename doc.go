// Package rental provides the types and functions of a personal rental-property
// investment calculator. It is local-first: the whole state is a single
// Portfolio value that can be serialized, stored under a key and restored.
//
// The core functionalities include:
//   - Financial Input: the economics of one property (price, financing,
//     revenue streams, recurring costs), normalized once from the whole-number
//     percentages a user types into fractions.
//   - Calculation Engine: stateless functions deriving monthly loan payment,
//     revenue, costs, net profit, annual ROI and a qualitative Health
//     classification from an Input.
//   - Property and Portfolio: identity-stamped property records kept newest
//     first, with index based edits and JSON/CSV encoding.
//
// Undo/redo history lives in the history package, persistence in the store
// package and the glue between them in the session package. This package
// serves as the foundational logic for the `rentcalc` command-line tool.
package rental
