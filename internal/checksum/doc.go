// Package checksum hashes normalized output so a clean run can report a
// stable content identity for every file it writes.
//
// # Example Usage
//
//	calculator := checksum.New()
//	sum := calculator.Calculate(content)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
