package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/metrics"
)

// searchRequest is the JSON body of POST /search.
type searchRequest struct {
	Grid [][]int `json:"grid"`
	Src  [2]int  `json:"src"`
	Dest [2]int  `json:"dest"`
	// Mode optionally overrides the configured termination mode.
	Mode string `json:"mode,omitempty"`
}

// searchResponse is the JSON answer of POST /search.
// Path and Cost are present only for FoundPath.
type searchResponse struct {
	Outcome   string   `json:"outcome"`
	Code      int      `json:"code"`
	Message   string   `json:"message"`
	Path      [][2]int `json:"path,omitempty"`
	Cost      *float64 `json:"cost,omitempty"`
	Expanded  int      `json:"expanded"`
	Truncated bool     `json:"truncated,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// newHandler builds the HTTP routes. collector may be nil.
func newHandler(cfg *config.Config, collector *metrics.Collector) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "use POST"})
			return
		}
		var req searchRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, cfg.Server.MaxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge,
					errorResponse{Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		resp, err := handleSearch(cfg, collector, req)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})
	if collector != nil {
		mux.Handle("/metrics", collector.Handler())
	}

	return mux
}

func handleSearch(cfg *config.Config, collector *metrics.Collector, req searchRequest) (searchResponse, error) {
	cells := 0
	for _, row := range req.Grid {
		cells += len(row)
	}
	if cells > cfg.Server.MaxCells {
		return searchResponse{}, fmt.Errorf("grid has %d cells, limit is %d", cells, cfg.Server.MaxCells)
	}
	g, err := grid.New(req.Grid)
	if err != nil {
		return searchResponse{}, err
	}
	opts := cfg.SearchOptions()
	if req.Mode != "" {
		mode, err := astar.ParseMode(req.Mode)
		if err != nil {
			return searchResponse{}, err
		}
		opts = append(opts, astar.WithMode(mode))
	}

	src := grid.Coordinate{Row: req.Src[0], Col: req.Src[1]}
	dest := grid.Coordinate{Row: req.Dest[0], Col: req.Dest[1]}
	start := time.Now()
	res, err := astar.Search(g, src, dest, opts...)
	if err != nil {
		return searchResponse{}, err
	}
	elapsed := time.Since(start)

	resp := searchResponse{
		Outcome:   res.Outcome.String(),
		Code:      int(res.Outcome),
		Message:   res.Outcome.Message(),
		Expanded:  res.Expanded,
		Truncated: res.Truncated,
	}
	if res.Outcome == astar.FoundPath {
		for _, c := range astar.ReconstructPath(res, dest) {
			resp.Path = append(resp.Path, [2]int{c.Row, c.Col})
		}
		cost := res.Cost()
		resp.Cost = &cost
	}
	if collector != nil {
		collector.Observe(res.Outcome, res.Expanded, len(resp.Path), elapsed)
	}

	return resp, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// serve listens on cfg.Metrics.Addr and runs the HTTP server until ctx is
// done or SIGINT/SIGTERM arrives, then shuts down gracefully.
func serve(ctx context.Context, cfg *config.Config, collector *metrics.Collector) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Metrics.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Metrics.Addr, err)
	}
	log.Printf("listening on %s (metrics enabled: %v)", ln.Addr(), collector != nil)

	return runServer(ctx, ln, newHandler(cfg, collector))
}

// runServer serves h on ln until ctx is done. It closes ln.
func runServer(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		log.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
