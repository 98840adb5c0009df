package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/go-javapy/pkg/javapy"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/mod/semver"
)

var (
	convertTo      string
	convertOut     string
	convertRelease string
)

var convertCmd = &cobra.Command{
	Use:   "convert [files or globs...]",
	Short: "Parse source files and render them in the target dialect",
	Long: `Parse brace-delimited or indented-dialect Java source files and
render them back out, by default as brace-delimited Java.

If no file is provided, reads from stdin. Multiple paths or glob patterns
convert each file independently; failures for individual files are
collected and reported together rather than stopping at the first one.

Examples:
  javapy convert Test.javapy              # indented -> brace, to stdout
  javapy convert --to indented Test.java  # brace -> indented, to stdout
  javapy convert --out out/ src/*.javapy  # batch mode, one output per input
  cat Test.java | javapy convert`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertTo, "to", "brace", "target dialect: brace or indented")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "output directory for batch mode (default: stdout)")
	convertCmd.Flags().StringVar(&convertRelease, "release", "", "target JDK feature release, e.g. v17 or v21")
}

func runConvert(cmd *cobra.Command, args []string) error {
	dialect, err := parseDialectFlag(convertTo)
	if err != nil {
		return err
	}
	if convertRelease != "" && !semver.IsValid(convertRelease) {
		return fmt.Errorf("invalid --release %q: must be a semver-ish feature token like v17", convertRelease)
	}

	if len(args) == 0 {
		return convertOne("", dialect)
	}

	var paths []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			paths = append(paths, pattern)
			continue
		}
		paths = append(paths, matches...)
	}

	var errs error
	for _, path := range paths {
		if err := convertOne(path, dialect); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}
	return errs
}

func convertOne(path string, dialect javapy.Dialect) error {
	var r io.ReadCloser
	if path == "" {
		r = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		r = f
	}
	defer r.Close()

	root, warnings, err := javapy.ParseWithWarnings(r, javapy.Brace)
	if err != nil {
		return reportParseError(err)
	}
	label := path
	if label == "" {
		label = "<stdin>"
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", label, w)
	}

	out := javapy.RenderDialect(root, dialect)
	if convertOut == "" || path == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.MkdirAll(convertOut, 0o755); err != nil {
		return err
	}
	dest := filepath.Join(convertOut, filepath.Base(path))
	return os.WriteFile(dest, []byte(out), 0o644)
}

func parseDialectFlag(s string) (javapy.Dialect, error) {
	switch strings.ToLower(s) {
	case "brace", "":
		return javapy.Brace, nil
	case "indented":
		return javapy.Indented, nil
	default:
		return javapy.Brace, fmt.Errorf("unknown dialect %q (use brace or indented)", s)
	}
}

func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return f, nil
}

func reportParseError(err error) error {
	if scan, parse, ok := javapy.Errors(err); ok {
		if scan != nil {
			return fmt.Errorf("scan error: %s", scan.Error())
		}
		return fmt.Errorf("parse error: %s", parse.Error())
	}
	return err
}
