// Package corpus provides integration tests that exercise cross-package
// workflows over realistic documents.
//
// These tests verify that codespan, casing, and filter work correctly
// together, and that filtering is stable under repeated application.
//
// Run with: go test -tags=integration -v -run TestCorpus ./integration/corpus/...
package corpus
