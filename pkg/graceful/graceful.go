package graceful

import (
	"os"
	"os/signal"
	"syscall"
)

// Stop 阻塞直到收到退出信号，然后执行 fn
func Stop(fn func()) {
	StopOn(nil, fn)
}

// StopOn 在收到退出信号或 done 关闭时执行 fn
func StopOn(done <-chan struct{}, fn func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case <-sig:
	case <-done:
	}
	fn()
}
