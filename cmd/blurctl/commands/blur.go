package commands

import (
	"flag"
	"fmt"
)

// applyOptions are the flags of 'blurctl apply'.
type applyOptions struct {
	fs        *flag.FlagSet
	common    commonFlags
	hwnd      *string
	intensity *float64
	color     *string
	animate   *bool
}

func newApplyOptions(handling flag.ErrorHandling) *applyOptions {
	fs := flag.NewFlagSet("apply", handling)
	return &applyOptions{
		fs:        fs,
		common:    addCommonFlags(fs),
		hwnd:      fs.String("hwnd", "", "Window handle (decimal or 0x hex)"),
		intensity: fs.Float64("intensity", 0, "Blur intensity 0.0-1.0; overrides effect.intensity"),
		color:     fs.String("color", "", "ARGB tint, e.g. 0x80000000; overrides effect.color"),
		animate:   fs.Bool("animate", false, "Animate the transition"),
	}
}

// override copies the flags given on the command line into config.
// Values are not checked here; config.Validate rejects bad ones.
func (o *applyOptions) override(config *Config) {
	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "intensity":
			config.Effect.Intensity = float32(*o.intensity)
		case "color":
			config.Effect.Color = *o.color
		case "animate":
			config.Effect.Animate = *o.animate
		}
	})
}

// Apply implements the 'blurctl apply' command. Flags override the
// [effect] section of the config file.
func Apply(args []string) error {
	o := newApplyOptions(flag.ExitOnError)
	o.fs.Parse(args)

	window, err := parseWindow(*o.hwnd)
	if err != nil {
		return err
	}
	config, err := o.common.load()
	if err != nil {
		return err
	}
	o.override(&config)
	if err := config.Validate(); err != nil {
		return err
	}
	params, err := config.Effect.Params()
	if err != nil {
		return err
	}

	s, err := openSession(config)
	if err != nil {
		return err
	}
	defer s.close()

	if _, err := s.start(); err != nil {
		return err
	}
	// No Shutdown here: blur_shutdown restores every window it blurred.
	if err := s.ctl.ApplyParams(window, params); err != nil {
		return err
	}
	fmt.Printf("Blurred window 0x%X (intensity %.2f, color 0x%08X)\n",
		uintptr(window), params.Intensity, params.ColorARGB)
	return nil
}
