package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	httpadapter "sudokugame/internal/adapters/http"
	"sudokugame/internal/generator"
	"sudokugame/internal/hint"
	"sudokugame/internal/infrastructure/archive"
	"sudokugame/internal/infrastructure/storage"
	"sudokugame/internal/ports"
	"sudokugame/internal/solver"
	"sudokugame/internal/usecase"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory")
	slot := flag.String("slot", "autosave", "write-through save slot name")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(*persist, 0o755)

	// Archive credentials come from the environment / .env; the archive is
	// optional and the server runs fine without one.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file", "err", err)
	}
	var ar ports.Archive
	if url := os.Getenv("POCKETBASE_URL"); url != "" {
		pb, err := archive.New(url,
			os.Getenv("POCKETBASE_EMAIL"),
			os.Getenv("POCKETBASE_PASSWORD"),
			os.Getenv("POCKETBASE_COLLECTION"))
		if err != nil {
			logger.Warn("puzzle archive unavailable", "err", err)
		} else {
			logger.Info("puzzle archive connected", "url", url)
			ar = pb
		}
	}

	// Wire providers → use cases → HTTP adapter
	s := solver.NewBacktrackingSolver()
	g := generator.NewUniqueGenerator(s)
	st := storage.NewFS(*persist)
	hin := hint.NewSingles()
	uc := usecase.NewService(g, hin, st, ar, *slot)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "persist", *persist, "slot", *slot)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
