package goroutine

import (
	"runtime/debug"
)

// Logger интерфейс для логирования ошибок.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// SafeGo запускает fn в горутине с перехватом panic.
func SafeGo(log Logger, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("panic в горутине: %v\nStack trace:\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}
