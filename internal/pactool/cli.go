package pactool

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gookit/color"
)

// Run checks the host, shows the menu and dispatches one line of choices.
// It returns the process exit code.
func Run(s *Session) int {
	if err := s.checkPreconditions(); err != nil {
		cPrintf(s.Err, colError, "%v\nexiting...\n", err)
		return 1
	}

	s.printMenu()
	s.Dispatch(s.readLine())
	return 0
}

// watchSignals lets a running tool handle the first interrupt itself, since
// it shares our terminal, and only forces an exit on a second one.
// Outside a tool run an interrupt ends pactool straight away.
func watchSignals(ctx context.Context, cancel context.CancelFunc, sigs <-chan os.Signal) {
	for {
		select {
		case sig := <-sigs:
			if isCriticalAtomic.Load() == 1 {
				colArrow.Print("\n==> ")
				colError.Printf("A tool is still running. Press Ctrl+C AGAIN to force exit NOW.\n")

				select {
				case <-sigs:
					colArrow.Print("\n==> ")
					colError.Printf("Forced immediate exit.\n")
					os.Exit(130)
				case <-time.After(5 * time.Second):
					continue
				case <-ctx.Done():
					return
				}
			}

			colArrow.Print("\n==> ")
			color.Danger.Printf("Received %v. Exiting\n", sig)
			cancel()
			os.Exit(130)

		case <-ctx.Done():
			return
		}
	}
}

// Main is the CLI entrypoint.
func Main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go watchSignals(ctx, cancel, sigs)

	configPath := ConfigFile
	if root := os.Getenv("PACTOOL_ROOT"); root != "" {
		configPath = filepath.Join(root, ConfigFile)
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Printf("Warning: reading %s: %v", configPath, err)
	}
	initConfig(cfg)

	s := NewSession(ctx, cfg, NewExecutor(ctx), os.Stdin, os.Stdout, os.Stderr)
	code := Run(s)

	cancel()
	os.Exit(code)
}
