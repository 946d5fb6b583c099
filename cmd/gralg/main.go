// Command gralg evaluates graph-algebra statements against a YAML workspace
// and can serve the same operations over HTTP.
//
//	gralg -w graphs.yaml -e "C = A + B" -e "C < A"
//	gralg -w graphs.yaml --serve --addr :8080 --watch
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/katalvlaran/gralgebra/algebra"
	"github.com/katalvlaran/gralgebra/expr"
	"github.com/katalvlaran/gralgebra/internal/config"
	"github.com/katalvlaran/gralgebra/internal/metrics"
	"github.com/katalvlaran/gralgebra/internal/server"
	"github.com/katalvlaran/gralgebra/workspace"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/pflag"
)

func main() {
	code := run(os.Args[1:], os.Stdout)
	klog.Flush()
	os.Exit(code)
}

func run(args []string, out io.Writer) int {
	fs := pflag.NewFlagSet("gralg", pflag.ContinueOnError)
	config.RegisterFlags(fs)

	kfs := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(kfs)
	kfs.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2 // pflag already printed the error and usage
	}
	cfg, err := config.Load(fs, "")
	if err != nil {
		klog.Errorf("config: %v", err)
		return 2
	}
	kfs.Set("v", strconv.Itoa(cfg.Verbose))

	if cfg.Workspace == "" {
		klog.Errorf("no workspace: pass --workspace or set GRALG_WORKSPACE")
		return 2
	}
	loader, err := workspace.NewLoader(cfg.Workspace)
	if err != nil {
		klog.Errorf("%v", err)
		return 1
	}
	ws := loader.Workspace()
	klog.Infof("loaded %d graphs from %s", ws.Len(), cfg.Workspace)
	metrics.WorkspaceGraphs.Set(float64(ws.Len()))

	if err := evalAll(ws, cfg.Eval, out, algebra.WithPlaceholder(cfg.Placeholder)); err != nil {
		klog.Errorf("%v", err)
		return 1
	}
	if !cfg.Serve {
		return 0
	}

	if cfg.Watch {
		loader.OnChange(func(ws *workspace.Workspace) {
			metrics.WorkspaceReloads.Inc()
			metrics.WorkspaceGraphs.Set(float64(ws.Len()))
			klog.Infof("workspace reloaded: %d graphs", ws.Len())
		})
		stop, err := loader.Watch()
		if err != nil {
			klog.Errorf("%v", err)
			return 1
		}
		defer stop()
	}

	if err := serve(cfg.Addr, server.New(loader, cfg.Placeholder)); err != nil {
		klog.Errorf("%v", err)
		return 1
	}

	return 0
}

// evalAll prints each statement's value; the first error stops the run.
func evalAll(env expr.Env, stmts []string, out io.Writer, opts ...algebra.FormatOption) error {
	for _, src := range stmts {
		v, err := expr.Eval(env, src)
		if err != nil {
			return errors.WithMessagef(err, "eval %q", src)
		}
		fmt.Fprintf(out, "> %s\n", src)
		if v.Kind == expr.KindGraph {
			if err := algebra.Fprint(out, v.Graph, opts...); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, v.String())
	}

	return nil
}

// serve runs the HTTP server until SIGINT/SIGTERM.
func serve(addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		klog.Infof("listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}
	klog.Infof("shutting down")
	shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
	defer done()

	return srv.Shutdown(shutdownCtx)
}
