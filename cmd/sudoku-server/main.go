package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/sudokulab/internal/adapters/http"
	"svw.info/sudokulab/internal/generator"
	"svw.info/sudokulab/internal/hint"
	"svw.info/sudokulab/internal/infrastructure/storage"
	"svw.info/sudokulab/internal/ports"
	"svw.info/sudokulab/internal/solver"
	"svw.info/sudokulab/internal/usecase"
	"svw.info/sudokulab/internal/validator"
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

// requestLogger logs method, path, status, bytes, and duration.
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
	storeKind := flag.String("store", "fs", "puzzle store: fs|sqlite")
	persist := flag.String("persist-path", "./data", "save directory (fs) or database file (sqlite)")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	solverKind := flag.String("solver", "backtrack", "solver to use: backtrack|dlx")
	unique := flag.Bool("unique", false, "carve generated puzzles down to a unique solution")
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

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "dlx":
		s = solver.NewDLX()
	default:
		s = solver.NewBacktracker()
	}

	var st ports.Storage
	switch strings.ToLower(strings.TrimSpace(*storeKind)) {
	case "sqlite":
		db, err := storage.NewSQLite(*persist)
		if err != nil {
			logger.Error("open sqlite store", "path", *persist, "err", err)
			os.Exit(1)
		}
		defer db.Close()
		st = db
	default:
		if err := os.MkdirAll(*persist, 0o755); err != nil {
			logger.Error("create save directory", "path", *persist, "err", err)
			os.Exit(1)
		}
		st = storage.NewFS(*persist)
	}

	// Wire providers -> use cases -> HTTP adapter
	g := generator.New(s)
	if *unique {
		g = generator.NewUnique(s)
	}
	uc := usecase.NewService(s, g, validator.New(), hint.NewSingles(), st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "store", *storeKind, "persist", *persist, "solver", *solverKind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
