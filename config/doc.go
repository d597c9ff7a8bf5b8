// Package config loads color console settings from TOML and CLI flags,
// and applies them to a running handler when the file changes.
//
// A file looks like:
//
//	target = "stderr"
//	color_mode = "always"
//	format = "pattern"
//	pattern = "[%H:%M:%S.%e] [%n] [%^%l%$] %v"
//	level = "debug"
//
//	[colors]
//	info = "intense green"
//	critical = "intense white on_red"
//
// Every key is optional; missing keys keep the values of Default.
package config
