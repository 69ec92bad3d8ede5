package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"minigrep/internal/config"
	"minigrep/internal/search"

	"go.uber.org/zap"
)

var (
	ErrFileRead        = errors.New("failed to read file")
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
	ErrWriteOutput     = errors.New("failed to write output")
)

type Runner struct {
	logger   *zap.Logger
	readFile func(name string) ([]byte, error)
}

func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{
		logger:   logger,
		readFile: os.ReadFile,
	}
}

// Run читает файл целиком, ищет строки и пишет их в w по одной на строку.
// Если файл не прочитан, в w ничего не попадает.
func (r *Runner) Run(cfg config.Config, w io.Writer) error {
	contents, err := r.input(cfg.FilePath)
	if err != nil {
		return err
	}

	mode := search.CaseSensitive
	if cfg.IgnoreCase {
		mode = search.CaseInsensitive
	}

	lines := search.Find(mode, cfg.Query, contents)
	r.logger.Debug("search finished",
		zap.String("file", cfg.FilePath),
		zap.Stringer("mode", mode),
		zap.Int("matches", len(lines)),
	)

	return r.printResult(lines, w)
}

func (r *Runner) input(path string) (string, error) {
	data, err := r.readFile(path)
	if err != nil {
		// ошибки os.ReadFile уже содержат путь
		return "", fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w %s: %w", ErrFileRead, path, ErrInvalidEncoding)
	}
	r.logger.Debug("file read", zap.String("file", path), zap.Int("bytes", len(data)))
	return string(data), nil
}

func (r *Runner) printResult(lines []string, w io.Writer) error {
	out := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
