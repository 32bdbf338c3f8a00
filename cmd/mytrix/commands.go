package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mytrix/internal/codec"
	"github.com/katalvlaran/mytrix/internal/config"
	"github.com/katalvlaran/mytrix/matrix"
	"github.com/katalvlaran/mytrix/scalar"
	"github.com/katalvlaran/mytrix/vector"
)

// inspectCmd builds each document and prints its domain, shape and cells.
var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Validate documents and print their domain, shape and contents",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

// equalCmd checks structural equality of two matrices.
var equalCmd = &cobra.Command{
	Use:   "equal A B",
	Short: "Structural equality: same domain, same shape, equal cells (exit 1 if not)",
	Args:  cobra.ExactArgs(2),
	RunE:  runEqual,
}

// compareCmd prints the element-wise equality matrix of two matrices.
var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Element-wise equality of two same-domain, same-shape matrices",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

// makeCmd generates zeros / ones / identity.
var makeCmd = &cobra.Command{
	Use:       "make zeros|ones|identity",
	Short:     "Generate a matrix in the given domain",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"zeros", "ones", "identity"},
	RunE:      runMake,
}

var (
	makeKind string
	makeRows int
	makeCols int
)

func init() {
	makeCmd.Flags().StringVarP(&makeKind, "kind", "k", "integer", "Domain: boolean | integer | real")
	makeCmd.Flags().IntVarP(&makeRows, "rows", "m", 2, "Number of rows")
	makeCmd.Flags().IntVarP(&makeCols, "cols", "n", 0, "Number of columns (defaults to rows)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	fallback, err := cfg.Kind()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, path := range args {
		doc, err := codec.DecodeFile(path)
		if err != nil {
			return err
		}
		if doc.IsVector() {
			v, err := doc.Vector(fallback)
			if err != nil {
				logger.Debug("vector rejected", zap.String("file", path), zap.Error(err))
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Debug("vector built", zap.String("file", path), zap.Stringer("kind", v.Kind()), zap.Int("len", v.Len()))
			if err = printVector(out, path, v); err != nil {
				return err
			}
			continue
		}

		m, err := doc.Matrix(fallback)
		if err != nil {
			logger.Debug("matrix rejected", zap.String("file", path), zap.Error(err))
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("matrix built", zap.String("file", path), zap.Stringer("kind", m.Kind()),
			zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))
		if err = printMatrix(out, path, m); err != nil {
			return err
		}
	}
	return nil
}

func runEqual(cmd *cobra.Command, args []string) error {
	a, b, err := loadPair(args)
	if err != nil {
		return err
	}
	if matrix.Equal(a, b) {
		fmt.Fprintln(cmd.OutOrStdout(), "equal")
		return nil
	}
	logger.Info("matrices differ",
		zap.Stringer("kind_a", a.Kind()), zap.Stringer("kind_b", b.Kind()),
		zap.Int("rows_a", a.Rows()), zap.Int("rows_b", b.Rows()),
		zap.Int("cols_a", a.Cols()), zap.Int("cols_b", b.Cols()))
	fmt.Fprintln(cmd.OutOrStdout(), "not equal")
	return errNotEqual
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, b, err := loadPair(args)
	if err != nil {
		return err
	}
	eq, err := a.ElemEqual(b)
	if err != nil {
		return err
	}
	return printMatrix(cmd.OutOrStdout(), "", eq)
}

func runMake(cmd *cobra.Command, args []string) error {
	kind, err := scalar.ParseKind(makeKind)
	if err != nil {
		return err
	}
	cols := makeCols
	if cols == 0 {
		cols = makeRows
	}

	var m matrix.Matrix
	switch args[0] {
	case "zeros":
		m, err = matrix.ZerosOf(kind, makeRows, cols)
	case "ones":
		m, err = matrix.OnesOf(kind, makeRows, cols)
	case "identity":
		if cmd.Flags().Changed("cols") && cols != makeRows {
			logger.Warn("identity is square; --cols ignored", zap.Int("cols", cols))
		}
		m, err = matrix.IdentityOf(kind, makeRows)
	default:
		return fmt.Errorf("unknown generator %q: %w", args[0], scalar.ErrTypeMismatch)
	}
	if err != nil {
		return err
	}
	return printMatrix(cmd.OutOrStdout(), "", m)
}

// loadPair decodes two matrix documents with the configured fallback kind.
func loadPair(paths []string) (matrix.Matrix, matrix.Matrix, error) {
	fallback, err := cfg.Kind()
	if err != nil {
		return nil, nil, err
	}
	out := make([]matrix.Matrix, 0, len(paths))
	for _, path := range paths {
		doc, err := codec.DecodeFile(path)
		if err != nil {
			return nil, nil, err
		}
		m, err := doc.Matrix(fallback)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, m)
	}
	return out[0], out[1], nil
}

func printMatrix(w io.Writer, name string, m matrix.Matrix) error {
	if cfg.Format == config.FormatYAML {
		return codec.EncodeMatrix(w, m)
	}
	if name != "" {
		fmt.Fprintf(w, "%s: ", name)
	}
	fmt.Fprintf(w, "%s %dx%d\n%s", m.Kind(), m.Rows(), m.Cols(), m)
	return nil
}

func printVector(w io.Writer, name string, v vector.Vector) error {
	if cfg.Format == config.FormatYAML {
		return codec.EncodeVector(w, v)
	}
	fmt.Fprintf(w, "%s: %s vector of length %d\n%s\n", name, v.Kind(), v.Len(), v)
	return nil
}
