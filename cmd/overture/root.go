package main

import (
	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"overture/config"
)

// options are the command line settings shared by every subcommand.
type options struct {
	configPath string
	cfg        config.Config
	clear      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "overture",
		Short: "Compose and render text grids in the terminal",
		Long: wordwrap.WrapString(`
Overture composes boxes, text and FIGlet banners on a character grid and prints the result to the terminal with ANSI styling.

Objects are placed on the grid by anchor (top-left, center-stage, bottom-right and so on) or by offset. Later objects paint over earlier ones. The grid grows downwards when something is drawn below its last row; anything past the right edge is dropped.

Scenes can be described in YAML and rendered with "overture render". Output goes to stdout line by line, or to a full-screen tcell device with --device tcell.
`, 80),
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	addFlags(root.PersistentFlags(), opts)

	root.AddCommand(newDemoCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newPaletteCmd(opts))
	return root
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	cfg := &opts.cfg
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.Uint32VarP(&cfg.Width, "width", "W", cfg.Width, "grid width in columns")
	flags.Uint32VarP(&cfg.Height, "height", "H", cfg.Height, "initial grid height in rows")
	flags.Uint32Var(&cfg.MinHeight, "min-height", cfg.MinHeight, "pad the output to at least this many rows")
	flags.StringVar(&cfg.Colors, "colors", cfg.Colors, "colour profile (auto|truecolor|ansi256|ansi|ascii)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace|debug|info|warn|error)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of stderr")
	flags.BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "render on the alternate screen")
	flags.BoolVar(&cfg.Pause, "pause", cfg.Pause, "wait for Enter after rendering")
	flags.StringVar(&cfg.Device, "device", cfg.Device, "output device (stdout|tcell)")
	flags.BoolVar(&opts.clear, "clear", false, "clear the screen before rendering")
}

// resolve merges the config file, the environment and the command line,
// in increasing order of precedence.
func (o *options) resolve(flags *pflag.FlagSet) (config.Config, error) {
	cfg := o.cfg
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return cfg, err
		}
		loaded.ApplyEnv()
		override(&loaded, o.cfg, flags)
		cfg = loaded
	} else {
		cfg.ApplyEnv()
		override(&cfg, o.cfg, flags)
	}
	return cfg, cfg.Validate()
}

// override copies the values of flags set on the command line into cfg.
func override(cfg *config.Config, fromFlags config.Config, flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = fromFlags.Width
		case "height":
			cfg.Height = fromFlags.Height
		case "min-height":
			cfg.MinHeight = fromFlags.MinHeight
		case "colors":
			cfg.Colors = fromFlags.Colors
		case "log-level":
			cfg.LogLevel = fromFlags.LogLevel
		case "log-file":
			cfg.LogFile = fromFlags.LogFile
		case "alt-screen":
			cfg.AltScreen = fromFlags.AltScreen
		case "pause":
			cfg.Pause = fromFlags.Pause
		case "device":
			cfg.Device = fromFlags.Device
		}
	})
}
