// Package reader loads the whole target file into memory as text
package reader

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var ErrFileRead = errors.New("failed to read file")

func ReadFile(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrFileRead, fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("%w %q: is a directory", ErrFileRead, fileName)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrFileRead, fileName, err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w %q: content is not valid UTF-8", ErrFileRead, fileName)
	}

	return string(raw), nil
}
