package cli

import (
	"net/http"
	_ "net/http/pprof"

	"go.uber.org/zap"
)

func setupProfiler(listenAddr string) {
	if listenAddr == "" {
		return
	}

	go func() {
		err := http.ListenAndServe(listenAddr, nil)
		if err != nil {
			zlog.Debug("unable to start profiling server", zap.Error(err), zap.String("listen_addr", listenAddr))
		}
	}()
}
