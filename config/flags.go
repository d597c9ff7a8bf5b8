package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/philipp01105/nlogcolor/console"
	"github.com/philipp01105/nlogcolor/core"
)

// Flags holds CLI flag names, allowing callers to customize them while
// keeping sensible defaults via [DefaultFlags].
type Flags struct {
	Target    string
	ColorMode string
	Format    string
	Pattern   string
	Level     string
	Caller    string
}

// DefaultFlags returns the flag names used by the nlogcolor command.
func DefaultFlags() Flags {
	return Flags{
		Target:    "target",
		ColorMode: "color-mode",
		Format:    "format",
		Pattern:   "pattern",
		Level:     "log-level",
		Caller:    "caller",
	}
}

// RegisterFlags binds flags for every field of c to fs. Current values of
// c become the flag defaults.
func (f Flags) RegisterFlags(fs *pflag.FlagSet, c *Config) {
	fs.StringVar(&c.Target, f.Target, c.Target,
		fmt.Sprintf("output target, one of: %s", strings.Join(AllTargets(), ", ")))
	fs.Var((*colorModeValue)(&c.ColorMode), f.ColorMode,
		fmt.Sprintf("color mode, one of: %s", strings.Join(console.AllColorModes(), ", ")))
	fs.StringVar(&c.Format, f.Format, c.Format,
		fmt.Sprintf("record format, one of: %s", strings.Join(AllFormats(), ", ")))
	fs.StringVar(&c.Pattern, f.Pattern, c.Pattern, "pattern for the pattern format")
	fs.Var((*levelValue)(&c.Level), f.Level,
		fmt.Sprintf("minimum level, one of: %s", strings.Join(core.AllLevelStrings(), ", ")))
	fs.BoolVar(&c.Caller, f.Caller, c.Caller, "include the caller in text and json records")
}

// RegisterCompletions registers shell completions for the enum flags on cmd.
func (f Flags) RegisterCompletions(cmd *cobra.Command) error {
	completions := map[string][]string{
		f.Target:    AllTargets(),
		f.ColorMode: console.AllColorModes(),
		f.Format:    AllFormats(),
		f.Level:     core.AllLevelStrings(),
	}
	for name, values := range completions {
		err := cmd.RegisterFlagCompletionFunc(name,
			cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}
	return nil
}

// AllTargets returns the accepted target names.
func AllTargets() []string {
	return []string{TargetStdout, TargetStderr}
}

// AllFormats returns the accepted format names.
func AllFormats() []string {
	return []string{FormatPattern, FormatText, FormatJSON}
}

// colorModeValue adapts console.ColorMode to pflag.Value.
type colorModeValue console.ColorMode

func (v *colorModeValue) String() string { return console.ColorMode(*v).String() }

func (v *colorModeValue) Set(s string) error {
	mode, err := console.ParseColorMode(s)
	if err != nil {
		return err
	}
	*v = colorModeValue(mode)
	return nil
}

func (v *colorModeValue) Type() string { return "mode" }

// levelValue adapts core.Level to pflag.Value.
type levelValue core.Level

func (v *levelValue) String() string { return strings.ToLower(core.Level(*v).String()) }

func (v *levelValue) Set(s string) error {
	level, err := core.ParseLevel(s)
	if err != nil {
		return err
	}
	*v = levelValue(level)
	return nil
}

func (v *levelValue) Type() string { return "level" }

// Merge returns base with every flag that was set on fs taken from flagged.
// Use it to layer command line flags over a loaded file.
func (f Flags) Merge(fs *pflag.FlagSet, base, flagged Config) Config {
	out := base
	if fs.Changed(f.Target) {
		out.Target = flagged.Target
	}
	if fs.Changed(f.ColorMode) {
		out.ColorMode = flagged.ColorMode
	}
	if fs.Changed(f.Format) {
		out.Format = flagged.Format
	}
	if fs.Changed(f.Pattern) {
		out.Pattern = flagged.Pattern
	}
	if fs.Changed(f.Level) {
		out.Level = flagged.Level
	}
	if fs.Changed(f.Caller) {
		out.Caller = flagged.Caller
	}
	return out
}

// Overlay returns an Overlay that merges the flags set on fs over every
// config it is given, so a reloaded file never undoes the command line.
func (f Flags) Overlay(fs *pflag.FlagSet, flagged Config) Overlay {
	return func(base Config) Config {
		return f.Merge(fs, base, flagged)
	}
}
