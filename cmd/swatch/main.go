// cmd/swatch/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"swatch/internal/builder"
	"swatch/internal/config"
	"swatch/internal/diag"
	"swatch/internal/scaffold"
)

type appConfig struct {
	quiet bool
}

func main() {
	appCfg := appConfig{}
	flag.BoolVar(&appCfg.quiet, "quiet", false, "Suppress progress and warning output.")
	flag.Usage = printHelp
	flag.Parse()

	if err := run(appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run(appCfg appConfig) error {
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return nil
	}

	switch args[0] {
	case "build":
		buildCmd := flag.NewFlagSet("build", flag.ExitOnError)
		configPath := buildCmd.String("c", scaffold.ConfigFileName, "Path to the styleguide config file.")
		buildCmd.Usage = func() {
			fmt.Println("Usage: swatch build [options]")
			fmt.Println("\nBuild the styleguide from annotated sources.")
			fmt.Println("\nOptions:")
			buildCmd.PrintDefaults()
		}
		buildCmd.Parse(args[1:])
		return runBuild(*configPath, appCfg)

	case "init":
		dir := "."
		if len(args) > 1 {
			dir = args[1]
		}
		if err := scaffold.Setup(dir); err != nil {
			return err
		}
		fmt.Println("Styleguide scaffolded. You can now:")
		fmt.Println("  cd", dir)
		fmt.Println("  swatch build")
		return nil

	default:
		flag.Usage()
	}
	return nil
}

func runBuild(configPath string, appCfg appConfig) error {
	opts, err := config.Load(configPath)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return err
	}
	cfg := config.Resolve(opts, filepath.Dir(absPath))

	var out io.Writer = os.Stdout
	if appCfg.quiet {
		out = io.Discard
	}
	sink := diag.NewSink(out)

	if !builder.Build(cfg, sink) {
		return errors.New("styleguide build failed")
	}
	if !appCfg.quiet {
		fmt.Println("✅ Build successful.")
	}
	return nil
}

func printHelp() {
	fmt.Println("swatch - build a styleguide site from annotated source comments")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  swatch [global-flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  build [-c file]  Build the styleguide described by the config file")
	fmt.Println("  init [dir]       Scaffold a new styleguide project")
	fmt.Println()
	fmt.Println("Global Flags:")
	flag.PrintDefaults()
}
