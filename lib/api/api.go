package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prismgl/prism/lib/config"
	"github.com/prismgl/prism/lib/log"
	"github.com/prismgl/prism/lib/metrics"
	"github.com/prismgl/prism/lib/stats"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/prismgl/prism/lib/api/docs"
)

// Controller is the part of the frame loop reachable from HTTP handlers.
// All methods are safe to call from any goroutine.
type Controller interface {
	RequestShutdown()
	RequestReload()
	Stats() *stats.Stats
}

type Api struct {
	srv    http.Server
	mux    *http.ServeMux
	cfg    *config.ApiCfg
	ctl    Controller
	logger *slog.Logger

	wsMutex   sync.Mutex
	wsClients map[*websocket.Conn]bool
}

func New(cfg *config.ApiCfg, ctl Controller) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.ctl = ctl
	a.logger = log.Module("api")
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)
	a.routes()
	return a
}

func (a *Api) routes() {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/kill", a.suicide)
	a.mux.HandleFunc("POST /api/reload", a.reload)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/ws", a.handleWebsocket)
	a.mux.Handle("GET /metrics", metrics.Handler())
	a.mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

func (a *Api) Close() error {
	return a.srv.Close()
}

// @Summary	Profile the CPU for ten seconds
// @Router		/prof [get]
// @Tags		debug
// @Produce	octet-stream
// @Success	200
func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Stop rendering and exit
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	a.logger.Info("shutting down as per api request")
	a.ctl.RequestShutdown()
	a.writeOK(w)
}

// @Summary	Recompile the shader program from its sources
// @Router		/api/reload [post]
// @Tags		base
// @Success	200
func (a *Api) reload(w http.ResponseWriter, _ *http.Request) {
	a.logger.Info("shader reload requested over api")
	a.ctl.RequestReload()
	a.writeOK(w)
}

// @Summary	Get render statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.ctl.Stats().Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

func (a *Api) writeOK(w http.ResponseWriter) {
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.logger.Error("could not write response", slog.Any("err", err))
	}
}

// ServeInBackground starts the API when cfg is set and returns nil
// otherwise.
func ServeInBackground(cfg *config.ApiCfg, ctl Controller) *Api {
	if cfg == nil {
		return nil
	}
	theApi := New(cfg, ctl)

	theApi.logger.Info("starting web server", slog.String("bind", cfg.Bind))
	go func() {
		err := theApi.Serve()
		if err != nil && err != http.ErrServerClosed {
			theApi.logger.Error("web server stopped", slog.Any("err", err))
		}
	}()
	return theApi
}
