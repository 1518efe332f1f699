package main

import (
	"log/slog"
	"net/http"
	"os"

	_ "net/http/pprof" // profiling

	"github.com/sergeykhargelia/RISC-V-disassembler/internal/logging"
	"github.com/sergeykhargelia/RISC-V-disassembler/internal/rvdis/cmd"
	"github.com/sergeykhargelia/RISC-V-disassembler/internal/rvdis/log"
)

func main() {
	log.Setup(logging.IsDebug())

	defer log.RecoverPanic("main", func() {
		slog.Error("Application terminated due to unhandled panic")
		os.Exit(1)
	})

	if os.Getenv("RVDIS_PROFILE") != "" {
		go func() {
			slog.Info("Serving pprof at localhost:6060")
			if httpErr := http.ListenAndServe("localhost:6060", nil); httpErr != nil {
				slog.Error("Failed to pprof listen", "error", httpErr)
			}
		}()
	}

	cmd.Execute()
}
