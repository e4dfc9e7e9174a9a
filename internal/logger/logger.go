package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// levelAliases maps CLI level names that logrus does not know.
var levelAliases = map[string]string{
	"warning":  "warn",
	"critical": "fatal",
}

// ParseLevel разбирает уровень логирования без учета регистра.
func ParseLevel(level string) (logrus.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if alias, ok := levelAliases[name]; ok {
		name = alias
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return 0, fmt.Errorf("неизвестный уровень логирования: %s", level)
	}
	return lvl, nil
}

// Setup настраивает глобальный логгер: уровень, JSON-формат и вывод.
// The returned closer releases the log file, if one was opened.
func Setup(level string, file string) (io.Closer, error) {
	logLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(logLevel)

	logrus.SetFormatter(&logrus.JSONFormatter{})

	if file == "" {
		logrus.SetOutput(os.Stdout)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть файл логов: %w", err)
	}
	logrus.SetOutput(f)
	return f, nil
}
