// Package consolehandler provides ColorConsoleHandler, a synchronous
// handler that writes formatted entries to a console.Device and renders
// the formatter's highlight ranges in a per-level color.
//
// For every record the handler:
//
//  1. drops it silently when the device is nil or invalid;
//  2. takes the handler lock (shareable between handlers on one device);
//  3. clears the entry's color ranges and formats it;
//  4. writes the bytes plain when the device is not a console, colors are
//     disabled, or the range starts and ends do not pair up;
//  5. otherwise writes the gaps plain and each range in the level color,
//     capturing the device attribute before and restoring it after every
//     colored span. A record without ranges is colored as a whole.
//
// Nothing is ever returned to the caller: write errors are ignored and a
// failed attribute query only costs the color, never the text.
//
// The color mode is resolved when the handler is built and on every
// SetColorMode call; Automatic probes the device at that moment only.
package consolehandler
