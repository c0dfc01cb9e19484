package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"mbticonsultant/adapters/render"
	"mbticonsultant/app"
	"mbticonsultant/domain/periodic"
	"mbticonsultant/internal"
	"mbticonsultant/internal/config"
	"mbticonsultant/internal/container"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataFile string

	rootCmd := &cobra.Command{
		Use:           "mbti",
		Short:         "The MBTI Consultant command line: list types, inspect layouts, export charts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "personality table to read (overrides DATA_FILE)")

	load := func() (*container.Container, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		if dataFile != "" {
			cfg.Data.File = dataFile
		}
		return container.New(cfg, internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level)))
	}

	rootCmd.AddCommand(
		newTypesCmd(load),
		newLayoutCmd(load),
		newExportCmd(load),
	)
	return rootCmd
}

type loader func() (*container.Container, error)

func newTypesCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the personality types found in the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			catalog, err := c.RenderService.Catalog(cmd.Context())
			if err != nil {
				return err
			}
			for _, code := range catalog {
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}
}

// selectionFlags are shared by the commands that render one type
type selectionFlags struct {
	typeCode string
	font     string
	scale    float64
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.typeCode, "type", "", "MBTI type to render (defaults to the first in the table)")
	cmd.Flags().StringVar(&f.font, "font", "", fmt.Sprintf("font family, one of: %s", strings.Join(periodic.Fonts, ", ")))
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "plot scale (defaults to PLOT_SCALE)")
}

func (f *selectionFlags) render(cmd *cobra.Command, c *container.Container) (*app.RenderResult, error) {
	defaults := c.DefaultStyle()
	req := app.RenderRequest{
		Type:  periodic.TypeCode(f.typeCode),
		Font:  f.font,
		Scale: defaults.Scale,
	}
	if req.Font == "" {
		req.Font = defaults.Font
	}
	if cmd.Flags().Changed("scale") {
		if err := periodic.ValidateScale(f.scale); err != nil {
			return nil, err
		}
		req.Scale = f.scale
	}
	return c.RenderService.Render(cmd.Context(), req)
}

func newLayoutCmd(load loader) *cobra.Command {
	var flags selectionFlags

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the derived layout of a type as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			result, err := flags.render(cmd, c)
			if err != nil {
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(result.Layout)
		},
	}
	flags.register(cmd)
	return cmd
}

func newExportCmd(load loader) *cobra.Command {
	var flags selectionFlags
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Draw a type's periodic table to a PNG or SVG file",
		Long: `Draw a type's periodic table to a PNG or SVG file.

Example: mbti export --type INTJ --format svg --out intj.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			c, err := load()
			if err != nil {
				return err
			}
			result, err := flags.render(cmd, c)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := render.Grid(&buf, result.Layout, f); err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err = io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s, %dx%d)\n", out, result.Layout.TypeCode, result.Layout.Width, result.Layout.Height)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "png", "output format: png or svg")
	cmd.Flags().StringVar(&out, "out", "", "output file (stdout when empty or -)")
	return cmd
}
