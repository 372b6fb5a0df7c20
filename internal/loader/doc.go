// Package loader turns the three flat-text gradebook sources into in-memory
// model records.
//
// Each source has a reader-level Parse function, which is what the tests
// drive, and a path-level Load function that opens the source, parses it,
// and always closes it again. Load reads all three sources into a single
// model.Gradebook.
//
// Failures fall in two classes, tested with errors.Is:
//
//   - ErrMissingResource: a source file or directory does not exist.
//   - ErrMalformedInput: a line cannot be parsed. The concrete error is a
//     *ParseError carrying the source name and line number.
package loader
