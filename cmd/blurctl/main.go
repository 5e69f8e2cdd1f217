package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/winblur/cmd/blurctl/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "version", "-v", "--version":
		err = commands.Version(version, args)
	case "caps":
		err = commands.Caps(args)
	case "apply":
		err = commands.Apply(args)
	case "watch":
		err = commands.Watch(args)
	case "init-config":
		err = commands.InitConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`blurctl - window blur control for blur_lib

Usage: blurctl <command> [options]

Commands:
  version         Print blurctl and blur_lib versions
  caps            Initialize blur_lib and print its capabilities
  apply           Blur a window once and exit
  watch           Blur windows and re-apply whenever the config changes
  init-config     Write a default blurctl.toml
  help            Show this help message

Common options:
  --config FILE   Config file (TOML or YAML)
  --lib PATH      Path to blur_lib.dll

Examples:
  blurctl caps
  blurctl apply --hwnd 0x1A2B3C --intensity 0.6 --color 0x80202020
  blurctl watch --hwnd 0x1A2B3C --hwnd 0x4D5E6F --config blurctl.toml

Configuration:
  blurctl reads blurctl.toml or blurctl.yaml from the current directory.
  WINBLUR_LIB_PATH and WINBLUR_LOG_LEVEL override the file.
  Run 'blurctl init-config' to create one with default values.`)
}
