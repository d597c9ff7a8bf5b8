// Package console models the output device of a color console handler.
//
// A Device is an io.Writer that can additionally report whether it is an
// interactive console and get or set its current text Attribute. Handlers
// borrow devices and never close them.
//
// Two implementations ship with the package:
//
//   - Terminal wraps an *os.File, probes it with go-isatty and renders
//     attributes as ANSI SGR sequences. Stdout and Stderr return shared
//     process-wide instances.
//   - Writer adapts any io.Writer as a device that is never a console, so
//     handlers always write plain text to it.
//
// Attribute uses the classic console attribute layout: four foreground
// bits, four background bits and style flags in the high byte. Handlers
// treat attributes as opaque values.
//
// ColorMode decides whether a handler colorizes at all. Automatic probes
// the device once when the mode is resolved; Always and Never force the
// outcome.
package console
