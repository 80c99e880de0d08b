// Package evaluator implements the static evaluator: a
// total-over-the-valid-AST, partial-over-misuse recursive dispatch that
// materializes a JSON-family AST into a plain Go runtime value.
package evaluator
