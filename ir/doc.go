// Package ir holds the in-memory form of a SPIR-V module and the
// analyses the linter consumes.
//
// A Module is decoded from a binary word stream by BuildModule and is
// treated as read-only afterwards. A Context wraps a Module together
// with the derived managers:
//
//   - CFG: block predecessors, successors and terminators per function
//   - PostDominatorAnalysis: post-dominator tree over an augmented CFG
//   - DefUseManager: definitions and uses of result ids
//   - TypeManager: storage classes of pointer types
//   - DecorationManager: decorations attached to result ids
//
// The layout mirrors the decode → analyze pipeline: raw words become
// Instructions, Instructions are partitioned into Functions and Blocks,
// and the managers index the result for the lint passes.
package ir
