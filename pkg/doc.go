// Package pkg provides migration risk analysis for Go applications.
//
// MigraSafe scans raw DDL/DML migration text against an ordered catalog of
// risk rules and produces scored, itemized findings. Detection is lexical:
// no SQL parsing, no AST, no execution.
//
// # Package Structure
//
//   - analyzer: text scanning, aggregation and risk classification
//     (recommended starting point)
//   - catalog: the fixed, ordered rule catalog
//   - types: Finding, AnalysisResult, BatchResult and Severity
//   - config: rules configuration loading (threshold, disabled rules)
//   - render: table/JSON/YAML report rendering
//   - logger: logging abstraction layer
//
// # Getting Started
//
//	import (
//	    "github.com/migrasafe/migrasafe/pkg/analyzer"
//	)
//
//	func main() {
//	    result := analyzer.Analyze(migrationSQL)
//	    fmt.Printf("score %d (%s)\n",
//	        result.TotalScore(), analyzer.RiskLabel(result.TotalScore()))
//	}
//
// # Thread Safety
//
// All public APIs are safe for concurrent use by multiple goroutines. The
// rule catalog is immutable, and each analysis allocates only its own
// result, so independent inputs may be analyzed in parallel.
//
// # Error Handling
//
// Analysis itself never fails: malformed or garbage input yields fewer or
// zero findings. Errors occur only at the boundary, when a migration file
// cannot be read, and are returned wrapped with the offending path.
package pkg
