package commands

import (
	"flag"
	"fmt"
	"os"
)

// InitConfig implements the 'blurctl init-config' command
func InitConfig(args []string) error {
	fs := flag.NewFlagSet("init-config", flag.ExitOnError)
	path := fs.String("path", DefaultConfigFile, "Where to write the config")
	libPath := fs.String("lib", "", "Path to blur_lib.dll to record in the config")
	force := fs.Bool("force", false, "Overwrite an existing file")
	fs.Parse(args)

	if _, err := os.Stat(*path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *path)
	}

	config := DefaultConfig()
	config.Library.Path = *libPath
	if err := SaveConfig(*path, config); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", *path)
	return nil
}
