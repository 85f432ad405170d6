// Package files provides file-related functionality organized into sub-packages:
//   - filesystem: File store abstraction (OS and in-memory implementations)
//   - scanner: Single-directory file discovery for the clean and load stages
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/sqlstage/internal/files/filesystem"
//	    "github.com/vvka-141/sqlstage/internal/files/scanner"
//	)
//
//	fileScanner := scanner.NewScannerWithFS(filesystem.NewOSFileSystem())
//	dumps, err := fileScanner.ListFiles("./csv")
package files
