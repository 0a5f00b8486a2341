package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const defaultEnvFile = ".env"

// Load разбирает флаги командной строки и подгружает env-файл.
// Отсутствие .env по умолчанию не ошибка, явно указанный --env-file обязан существовать.
// Уже выставленные переменные окружения не перезаписываются.
func Load(name string, args []string) error {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	// остальные флаги разбирает сам бинарник
	flags.ParseErrorsWhitelist.UnknownFlags = true
	envFile := flags.String("env-file", "", "path to the env file (default .env)")
	port := flags.String("port", "", "server port (overrides PORT environment variable)")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	path := *envFile
	if path == "" {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if *envFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	if *port != "" {
		if err := os.Setenv("PORT", *port); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
