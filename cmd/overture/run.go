package main

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"overture/config"
	"overture/device"
	"overture/device/tcell"
	"overture/engine"
	"overture/logging"
	"overture/scene"
	"overture/term"
)

// newDevice opens the full-screen device; tests replace it.
var newDevice func() (device.Device, error) = tcell.NewDevice

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render the title card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return show(cmd, opts, cfg, scene.Demo(cfg.Width, cfg.MinHeight))
		},
	}
}

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render <scene.yaml>",
		Short: "Render a YAML scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			s, err := scene.LoadFile(args[0])
			if err != nil {
				return err
			}
			sizeFromScene(&cfg, s, cmd)
			entries, err := s.Build()
			if err != nil {
				return errors.Wrapf(err, "scene %q", args[0])
			}
			return show(cmd, opts, cfg, entries)
		},
	}
}

// sizeFromScene lets the scene set the grid size unless the command line
// already did.
func sizeFromScene(cfg *config.Config, s *scene.Scene, cmd *cobra.Command) {
	flags := cmd.Flags()
	if s.Width > 0 && !flags.Changed("width") {
		cfg.Width = s.Width
	}
	if s.Height > 0 && !flags.Changed("height") {
		cfg.Height = s.Height
	}
	if s.MinHeight > 0 && !flags.Changed("min-height") {
		cfg.MinHeight = s.MinHeight
	}
}

// show loads entries onto a new engine and sends it to the configured
// device.
func show(cmd *cobra.Command, opts *options, cfg config.Config, entries []scene.Entry) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log, closeLog, err := logging.Open(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closeLog()

	out := cmd.OutOrStdout()
	session := term.NewSession(out)
	profile, err := cfg.Profile(session.Profile)
	if err != nil {
		return err
	}
	log.Debug().
		Uint32("width", cfg.Width).
		Uint32("height", cfg.Height).
		Str("profile", config.ProfileName(profile)).
		Int("objects", len(entries)).
		Msg("render")

	e := engine.New(cfg.Width, cfg.Height,
		engine.WithOutput(out),
		engine.WithProfile(profile),
		engine.WithLogger(log))
	scene.LoadEntries(e, entries)

	if cfg.Device == config.DeviceTcell {
		return present(e, log)
	}

	session.Enter(cfg.AltScreen)
	defer session.Exit()
	if opts.clear {
		if err := e.Flush(); err != nil {
			return errors.Wrap(err, "clearing screen")
		}
	}
	if err := e.Render(cfg.MinHeight); err != nil {
		return errors.Wrap(err, "writing output")
	}
	if rows := e.WideRows(); rows > 0 {
		log.Warn().Int("rows", rows).Msg("wide characters shift the right edge of some rows")
	}
	if cfg.Pause {
		pause(cmd.InOrStdin())
	}
	return nil
}

func present(e *engine.Engine, log zerolog.Logger) error {
	dev, err := newDevice()
	if err != nil {
		return errors.Wrap(err, "opening terminal")
	}
	defer dev.Stop()
	e.Present(dev)
	log.Debug().Msg("presented; waiting for a key")
	dev.WaitKey()
	return nil
}

func pause(in io.Reader) {
	_, _ = bufio.NewReader(in).ReadString('\n')
}
