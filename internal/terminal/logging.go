// internal/terminal/logging.go
package terminal

import (
	"fmt"
	"io"
	"log"
	"os"
)

// RedirectLog уводит вывод log с экрана, пока им владеет tcell: в файл path
// или, если path пуст, в никуда. restore возвращает прежний вывод и закрывает файл.
func RedirectLog(path string) (restore func(), err error) {
	prev := log.Writer()
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return func() {}, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		f.Close()
	}, nil
}
