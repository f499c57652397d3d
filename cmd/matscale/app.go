package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-matrix/internal/matrixio"
	"github.com/cwbudde/algo-matrix/matrix"
)

type options struct {
	configPath string
	factor     float64
	inPath     string
	outPath    string
	format     string
	noCheck    bool
	kernel     string
	outRows    int
	outCols    int
	logLevel   string
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	var opts options

	return &cli.Command{
		Name:      "matscale",
		Usage:     "Scale a dense row-major matrix by a scalar",
		UsageText: "matscale [flags]\nmatscale kernels",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "YAML config file (default: user config dir, matscale/config.yaml, if present)",
				Destination: &opts.configPath,
			},
			&cli.FloatFlag{
				Name:        "factor",
				Aliases:     []string{"f"},
				Usage:       "scale factor",
				Value:       1,
				Destination: &opts.factor,
			},
			&cli.StringFlag{
				Name:        "in",
				Aliases:     []string{"i"},
				Usage:       "input document, - for stdin",
				Value:       "-",
				Destination: &opts.inPath,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output document, - for stdout",
				Value:       "-",
				Destination: &opts.outPath,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "document format (json, yaml)",
				Value:       "json",
				Destination: &opts.format,
			},
			&cli.BoolFlag{
				Name:        "no-check",
				Usage:       "skip the input/output shape comparison",
				Destination: &opts.noCheck,
			},
			&cli.StringFlag{
				Name:        "kernel",
				Usage:       "force a registered kernel (see 'matscale kernels')",
				Destination: &opts.kernel,
			},
			&cli.IntFlag{
				Name:        "out-rows",
				Usage:       "declared output rows (default: input rows)",
				Destination: &opts.outRows,
			},
			&cli.IntFlag{
				Name:        "out-cols",
				Usage:       "declared output cols (default: input cols)",
				Destination: &opts.outCols,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Value:       "warn",
				Destination: &opts.logLevel,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runScale(cmd, &opts, stdin, stdout, stderr)
		},
		Commands: []*cli.Command{
			kernelsCmd(stdout),
		},
	}
}

func kernelsCmd(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "kernels",
		Usage: "List registered scaling kernels",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return printKernels(stdout)
		},
	}
}

func printKernels(w io.Writer) error {
	selected := matrix.KernelName()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tSelected\n------\t--------\n"); err != nil {
		return fmt.Errorf("write kernel header: %w", err)
	}
	for _, name := range matrix.Kernels() {
		mark := ""
		if name == selected {
			mark = "*"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", name, mark); err != nil {
			return fmt.Errorf("write kernel row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush kernel table: %w", err)
	}
	return nil
}

func runScale(cmd *cli.Command, opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfgPath, optional := opts.configPath, false
	if cfgPath == "" {
		cfgPath, optional = matrixio.DefaultConfigPath(), true
	}
	cfg, err := matrixio.LoadConfig(cfgPath, optional)
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg, opts)

	logger, err := newLogger(stderr, opts.logLevel)
	if err != nil {
		return err
	}

	format, err := matrixio.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	doc, err := readDocument(opts.inPath, format, stdin)
	if err != nil {
		return err
	}
	src, err := doc.Matrix()
	if err != nil {
		return err
	}

	outRows, outCols := src.Rows, src.Cols
	if cmd.IsSet("out-rows") {
		outRows = opts.outRows
	}
	if cmd.IsSet("out-cols") {
		outCols = opts.outCols
	}
	if outRows < 0 || outCols < 0 {
		return fmt.Errorf("output shape must be non-negative: %dx%d", outRows, outCols)
	}

	scaleOpts := []matrix.Option{matrix.WithSizeCheck(!opts.noCheck)}
	if opts.kernel != "" {
		scaleOpts = append(scaleOpts, matrix.WithKernel(opts.kernel))
	}
	scaler, err := matrix.NewScaler(scaleOpts...)
	if err != nil {
		return err
	}

	// An unchecked run with a smaller declared output still needs room for
	// every input element.
	dst := matrix.WrapF32(outRows, outCols, make([]float32, max(outRows*outCols, src.Len())))

	logger.Debug("scaling matrix",
		"rows", src.Rows, "cols", src.Cols,
		"out_rows", outRows, "out_cols", outCols,
		"factor", opts.factor, "size_check", scaler.SizeCheck(), "kernel", scaler.Kernel())

	st := scaler.Scale(src, float32(opts.factor), dst)
	if st != matrix.Success {
		logger.Error("scale failed", "status", st.String())
		return fmt.Errorf("scale %dx%d into %dx%d: %w", src.Rows, src.Cols, outRows, outCols, st.Err())
	}

	logger.Info("scaled matrix", "elements", src.Len(), "status", st.String())

	return writeDocument(opts.outPath, format, matrixio.FromMatrix(dst), stdout)
}

// applyConfig copies config file values into opts for flags the user did
// not set explicitly.
func applyConfig(cmd *cli.Command, cfg matrixio.Config, opts *options) {
	if cfg.Factor != nil && !cmd.IsSet("factor") {
		opts.factor = float64(*cfg.Factor)
	}
	if cfg.Format != "" && !cmd.IsSet("format") {
		opts.format = cfg.Format
	}
	if cfg.SizeCheck != nil && !cmd.IsSet("no-check") {
		opts.noCheck = !*cfg.SizeCheck
	}
	if cfg.Kernel != "" && !cmd.IsSet("kernel") {
		opts.kernel = cfg.Kernel
	}
	if cfg.LogLevel != "" && !cmd.IsSet("log-level") {
		opts.logLevel = cfg.LogLevel
	}
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func readDocument(path string, format matrixio.Format, stdin io.Reader) (matrixio.Document, error) {
	if path == "" || path == "-" {
		return matrixio.Decode(stdin, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return matrixio.Document{}, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	return matrixio.Decode(f, format)
}

func writeDocument(path string, format matrixio.Format, doc matrixio.Document, stdout io.Writer) error {
	if path == "" || path == "-" {
		return matrixio.Encode(stdout, format, doc)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := matrixio.Encode(f, format, doc); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
