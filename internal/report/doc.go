// Package report renders tournament progress as styled terminal text.
//
// A Printer writes to one io.Writer through its own lipgloss renderer, so
// colors are only emitted when that writer is a terminal that supports
// them. Output written to a buffer or a pipe is plain text.
package report
