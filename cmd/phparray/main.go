// phparray - render JSON or Lua data as PHP array literals
//
// Usage:
//
//	phparray render [flags] [file]   Render a JSON or Lua file as a PHP array
//	phparray demo [flags]            Render the built-in demo payload
//	phparray version                 Print version info
//
// If no file is given (or the file is "-"), render reads from stdin.
//
// Options resolve in this order: flags, PHPARRAY_* environment variables,
// the --config file, built-in defaults.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Neumenon/phparray/phparray"
)

const libVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "phparray",
		Short:         "Render JSON or Lua data as PHP array literals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.String("indent", "four", "indent per level: two, four, tab, none or a literal string")
	flags.String("quote", "double", "quote: simple, double or a literal character")
	flags.Bool("trailing-comma", false, "add a separator after the last element of each array")
	flags.Bool("pretty", true, "multi-line output (always on, kept for compatibility)")
	flags.BoolP("verbose", "v", false, "log debug information to stderr")

	root.AddCommand(newRenderCmd(v), newDemoCmd(v), newVersionCmd())
	return root
}

func newRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON or Lua file as a PHP array",
		Example: `  echo '{"b":1,"a":[true,null]}' | phparray render
  phparray render --indent tab --quote simple config.lua
  PHPARRAY_TRAILING_COMMA=true phparray render data.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 && args[0] != "-" {
				path = args[0]
			}

			val, err := loadValue(path, v.GetString("from"), cmd.InOrStdin())
			if err != nil {
				return err
			}
			return writeRendered(cmd.OutOrStdout(), val, renderOptions(v))
		},
	}

	cmd.Flags().String("from", "auto", "input format: json, lua or auto (by file extension)")
	return cmd
}

func newDemoCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render the built-in demo payload (tab indent, simple quotes by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v.SetDefault("indent", "tab")
			v.SetDefault("quote", "simple")
			return writeRendered(cmd.OutOrStdout(), demoValue(), renderOptions(v))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "phparray %s\n", libVersion)
		},
	}
}

// loadConfig binds flags and PHPARRAY_* variables, reads the optional config
// file and installs the logger.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix("PHPARRAY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	setupLogging(cmd.ErrOrStderr(), v.GetBool("verbose"))
	slog.Debug("configuration loaded", "config", v.ConfigFileUsed())
	return nil
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func renderOptions(v *viper.Viper) phparray.Options {
	return phparray.NewOptions(
		phparray.WithIndent(resolveIndent(v.GetString("indent"))),
		phparray.WithQuote(resolveQuote(v.GetString("quote"))),
		phparray.WithTrailingComma(v.GetBool("trailing-comma")),
		phparray.WithPretty(v.GetBool("pretty")),
	)
}

// resolveIndent maps preset names to indent strings; anything else is used
// as-is.
func resolveIndent(s string) string {
	switch s {
	case "two":
		return phparray.IndentTwoSpaces
	case "four":
		return phparray.IndentFourSpaces
	case "tab":
		return phparray.IndentTab
	case "none":
		return phparray.IndentNone
	default:
		return s
	}
}

// resolveQuote maps preset names to quote characters; anything else is used
// as-is.
func resolveQuote(s string) string {
	switch s {
	case "simple":
		return phparray.QuoteSimple
	case "double":
		return phparray.QuoteDouble
	default:
		return s
	}
}

func loadValue(path, format string, stdin io.Reader) (*phparray.Value, error) {
	if format == "auto" {
		format = "json"
		if strings.EqualFold(filepath.Ext(path), ".lua") {
			format = "lua"
		}
	}
	slog.Debug("loading input", "path", path, "format", format)

	switch format {
	case "json":
		data, err := readInput(path, stdin)
		if err != nil {
			return nil, err
		}
		return phparray.FromJSON(data)

	case "lua":
		if path != "" {
			return phparray.EvalLuaFile(path)
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return phparray.EvalLua(string(data))

	default:
		return nil, fmt.Errorf("unknown input format %q (want json, lua or auto)", format)
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return data, nil
}

func writeRendered(w io.Writer, val *phparray.Value, opts phparray.Options) error {
	out := phparray.RenderWithOptions(val, opts)
	slog.Debug("rendered", "kind", val.Kind(), "bytes", len(out),
		"indent", opts.Indent, "quote", opts.Quote, "trailingComma", opts.TrailingComma)
	_, err := fmt.Fprintln(w, out)
	return err
}

// demoValue is the sample payload shipped with the tool.
func demoValue() *phparray.Value {
	return phparray.Mapping(
		phparray.Pair("test", phparray.Sequence(
			phparray.Text("zef"),
			phparray.Int(1),
			phparray.Mapping(phparray.Pair("lol", phparray.Int(5))),
			phparray.Null(),
			phparray.Bool(false),
			phparray.Mapping(
				phparray.Pair("lol", phparray.Number(math.Inf(1))),
				phparray.Pair("hay", phparray.Text(`""ezzed"ré"`)),
				phparray.Pair("hoy", phparray.Text(`'eee\'"ezzed"ré"`)),
			),
		)),
	)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "phparray: "+format+"\n", args...)
	os.Exit(1)
}
