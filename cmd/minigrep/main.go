package main

import (
	"fmt"
	"io"
	"os"

	"minigrep/internal/app"
	"minigrep/internal/config"
	"minigrep/internal/logger"
)

func main() {
	os.Exit(run(os.Args, os.LookupEnv, os.Stdout, os.Stderr))
}

// run возвращает код выхода, чтобы main можно было проверить без os.Exit
func run(args []string, lookupEnv config.LookupFunc, stdout, stderr io.Writer) int {
	if err := execute(args, lookupEnv, stdout, stderr); err != nil {
		if config.IsConfigError(err) {
			fmt.Fprintln(stderr, "Problem parsing arguments:", err)
		} else {
			fmt.Fprintln(stderr, "Application error:", err)
		}
		return 1
	}
	return 0
}

func execute(args []string, lookupEnv config.LookupFunc, stdout, stderr io.Writer) error {
	cfg, err := config.Build(args, lookupEnv)
	if err != nil {
		return err
	}

	log := logger.ProvideLogger(stderr)
	defer func() { _ = log.Sync() }()

	return app.NewRunner(log).Run(cfg, stdout)
}
