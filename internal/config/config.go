package config

import (
	"errors"
)

// IgnoreCaseEnv включает поиск без учета регистра, если переменная задана (любое значение, даже пустое)
const IgnoreCaseEnv = "IGNORE_CASE"

var (
	ErrMissingArguments = errors.New("Not enough arguments.")
	ErrMissingQuery     = errors.New("No query")
	ErrMissingFilePath  = errors.New("No file path")
)

type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// LookupFunc имеет сигнатуру os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Build собирает конфигурацию из аргументов командной строки.
// args[0] это имя программы, дальше идут <query> <file_path>.
func Build(args []string, lookupEnv LookupFunc) (Config, error) {
	if len(args) < 3 {
		return Config{}, ErrMissingArguments
	}

	tokens := newCursor(args[1:])

	query, ok := tokens.next()
	if !ok {
		return Config{}, ErrMissingQuery
	}

	filePath, ok := tokens.next()
	if !ok {
		return Config{}, ErrMissingFilePath
	}

	_, ignoreCase := lookupEnv(IgnoreCaseEnv)

	return Config{
		Query:      query,
		FilePath:   filePath,
		IgnoreCase: ignoreCase,
	}, nil
}

// IsConfigError сообщает, относится ли ошибка к разбору аргументов
func IsConfigError(err error) bool {
	return errors.Is(err, ErrMissingArguments) ||
		errors.Is(err, ErrMissingQuery) ||
		errors.Is(err, ErrMissingFilePath)
}

// cursor отдает токены слева направо, каждый не более одного раза
type cursor struct {
	tokens []string
	pos    int
}

func newCursor(tokens []string) *cursor {
	return &cursor{tokens: tokens}
}

func (c *cursor) next() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}
