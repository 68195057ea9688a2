package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ranamom/cpuid-dump/cpuid"
	"github.com/Ranamom/cpuid-dump/dump"
	"github.com/Ranamom/cpuid-dump/envconfig"
	"github.com/Ranamom/cpuid-dump/logutil"
	"github.com/Ranamom/cpuid-dump/version"
)

// saveAuto is the --save value when the flag is given without a path.
const saveAuto = "auto"

func NewCLI() *cobra.Command {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))

	rootCmd := &cobra.Command{
		Use:     "cpuid-dump",
		Short:   "CPUID register dumper",
		Version: version.Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		// Unknown flags pass through as ordinary arguments so a typo'd
		// option warns instead of aborting the dump.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		RunE:               run,
	}

	rootCmd.Flags().BoolP("all", "a", false, "Dump every logical processor, not just the current one")
	rootCmd.Flags().BoolP("raw", "r", false, "Print raw hex registers without decoding")
	rootCmd.Flags().Bool("bin", false, "Print registers in binary")
	rootCmd.Flags().BoolP("compat", "c", false, "Print in the cpuid -r compatible layout")
	rootCmd.Flags().Bool("full", false, "Shorthand for --disp-zero with --no-diff")
	rootCmd.Flags().Bool("disp-zero", false, "Keep entries whose registers are all zero")
	rootCmd.Flags().Bool("no-diff", false, "Print every processor in full instead of diffing against the first")
	rootCmd.Flags().String("leaf", "", "Dump a single leaf, e.g. 0x1")
	rootCmd.Flags().String("subleaf", "", "Sub-leaf for --leaf (default 0x0)")

	rootCmd.Flags().StringP("save", "s", "", "Write the dump to a file instead of stdout")
	rootCmd.Flags().Lookup("save").NoOptDefVal = saveAuto

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		slog.Warn("unknown option", "arg", arg)
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	out, err := dump.Run(opts)
	if err != nil {
		return err
	}

	save, _ := cmd.Flags().GetString("save")
	if save == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}

	path, err := savePath(save)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Output to %q\n", path)
	return nil
}

func resolveOptions(cmd *cobra.Command) (dump.Options, error) {
	flag := func(name string) bool {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}

	opts := dump.Options{
		All:      flag("all"),
		SkipZero: !flag("disp-zero"),
		Diff:     !flag("no-diff"),
	}

	switch {
	case flag("compat"):
		opts.Style = dump.StyleCompat
	case flag("bin"):
		opts.Style = dump.StyleBinary
	case flag("raw"):
		opts.Style = dump.StyleRaw
	default:
		opts.Style = dump.StyleParsed
	}

	if flag("full") {
		opts.SkipZero = false
		opts.Diff = false
	}

	// The compatible layout is a faithful reproduction: always every
	// processor, in full, with nothing elided.
	if opts.Style == dump.StyleCompat {
		opts.All = true
		opts.SkipZero = false
		opts.Diff = false
	}

	leaf, _ := cmd.Flags().GetString("leaf")
	sub, _ := cmd.Flags().GetString("subleaf")
	if leaf == "" {
		if sub != "" {
			slog.Warn("--subleaf is ignored without --leaf")
		}
		return opts, nil
	}

	var q cpuid.Query
	var err error
	if q.Leaf, err = parseNumber(leaf); err != nil {
		return opts, fmt.Errorf("bad --leaf value %q: %w", leaf, err)
	}
	if sub != "" {
		if q.Sub, err = parseNumber(sub); err != nil {
			return opts, fmt.Errorf("bad --subleaf value %q: %w", sub, err)
		}
	}
	opts.Only = &q
	return opts, nil
}

// parseNumber reads a 32-bit flag value in decimal or 0x hex, tolerating
// underscore separators.
func parseNumber(s string) (uint32, error) {
	s = strings.ReplaceAll(s, "_", "")

	base := 10
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		s, base = rest, 16
	}

	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// savePath resolves the --save argument to a file path. The bare flag and
// directory arguments both fall back to a name derived from the processor.
func savePath(save string) (string, error) {
	if save == saveAuto {
		return defaultFileName(), nil
	}
	if info, err := os.Stat(save); err == nil && info.IsDir() {
		return filepath.Join(save, defaultFileName()), nil
	}
	return save, nil
}

// defaultFileName builds "<brand_string>_<FMS>.txt" with spaces collapsed
// to underscores, e.g. "AMD_Ryzen_5_5600G_with_Radeon_Graphics_00A50F00.txt".
func defaultFileName() string {
	name := strings.Join(strings.Fields(cpuid.BrandString()), "_")
	if name == "" {
		name = "cpuid"
	}
	fms := cpuid.Probe(0x1, 0x0).EAX
	return fmt.Sprintf("%s_%08X.txt", name, fms)
}
