// Package match provides field-name folding and edit-distance based
// suggestions for record keys.
//
// Key functions:
//   - Fold: canonical form of a field name under the fold policy
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks existing keys that look like a missing one
package match
