package commands

import (
	"flag"
	"fmt"

	"github.com/agiangrant/winblur"
)

// Version implements the 'blurctl version' command
func Version(cliVersion string, args []string) error {
	fs := flag.NewFlagSet("version", flag.ExitOnError)
	common := addCommonFlags(fs)
	fs.Parse(args)

	config, err := common.load()
	if err != nil {
		return err
	}
	s, err := openSession(config)
	if err != nil {
		return err
	}
	defer s.close()

	fmt.Printf("blurctl version %s\n", cliVersion)
	fmt.Printf("blur_lib version %s\n", s.ctl.Version())
	platform := winblur.CurrentPlatform()
	fmt.Printf("platform %s (blur supported: %t)\n", platform, platform.SupportsBlur())
	return nil
}

// Caps implements the 'blurctl caps' command
func Caps(args []string) error {
	fs := flag.NewFlagSet("caps", flag.ExitOnError)
	common := addCommonFlags(fs)
	fs.Parse(args)

	config, err := common.load()
	if err != nil {
		return err
	}
	s, err := openSession(config)
	if err != nil {
		return err
	}
	defer s.close()

	caps, err := s.start()
	if err != nil {
		return err
	}
	fmt.Printf("0x%08X %s\n", uint32(caps), caps)
	return nil
}
