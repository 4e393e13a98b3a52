// Package main provides the entry point for the tray application.
// The application lives in the system tray and shows a single window on
// demand: a primary click on the tray icon, or starting the binary again.
//
// Usage:
//
//	trayapp [options]
//
// Environment:
//
//	On Linux a StatusNotifier tray host must be running in the session.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/yllada/trayapp/app"
	"github.com/yllada/trayapp/cli"
	"github.com/yllada/trayapp/common"
	"github.com/yllada/trayapp/config"
	"github.com/yllada/trayapp/tray"
	"github.com/yllada/trayapp/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	showVersion = pflag.BoolP("version", "v", false, "Show version and exit")
	verbose     = pflag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = pflag.BoolP("help", "h", false, "Show help message")
	startHidden = pflag.Bool("hidden", false, "Start in the tray without opening the window")
	configPath  = pflag.String("config", "", "Path to the configuration file")
)

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Usage = func() { cli.PrintHelp(os.Stderr) }
	pflag.Parse()

	if *showHelp {
		cli.PrintHelp(os.Stdout)
		return 0
	}

	if *showVersion {
		cli.PrintVersion(os.Stdout, cli.BuildInfo{
			Version:   appVersion,
			BuildTime: buildTime,
			Commit:    commitSHA,
		})
		return 0
	}

	cfg, cfgErr := loadConfig()

	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}
	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  cfg.LogToFile,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	if cfgErr != nil {
		common.LogWarn("Using default configuration: %v", cfgErr)
	}

	common.LogInfo("Starting %s v%s", common.AppName, appVersion)

	application := ui.NewApplication(cfg, append([]string{os.Args[0]}, pflag.Args()...))
	bridge := app.New(application, application, tray.NewSystrayBackend(), app.Options{
		Version:     appVersion,
		StartHidden: *startHidden || !cfg.ShowOnStart,
	})

	setupSignalHandler(bridge)

	exitCode, err := bridge.Run()
	if err != nil {
		common.LogError("Startup failed: %v", err)
		cli.PrintError(os.Stderr, err)
		return 1
	}
	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	return exitCode
}

// loadConfig reads the configuration named by --config, or the default
// file. On error the defaults are returned along with the error.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.DefaultConfig(), err
	}
	return cfg, nil
}

// setupSignalHandler quits the event loop on SIGINT/SIGTERM. Teardown then
// runs as for a Close from the tray menu.
func setupSignalHandler(bridge *app.Bridge) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
		bridge.Quit()
	}()
}
