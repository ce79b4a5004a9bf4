package site

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
)

// ServeOptions configures the preview server.
type ServeOptions struct {
	Dir      string // generated site directory to serve
	Port     int
	Open     bool // open the browser on start
	Watch    bool // watch sources and push live reloads
	WatchDir string
	OnChange func() error // rebuild hook, invoked before clients reload
}

// Serve starts a local HTTP server for the generated site. With Watch
// enabled, page sources are polled for changes; on a change the OnChange
// hook runs and connected browsers are told to reload over a websocket.
func Serve(opts ServeOptions) error {
	hub := newReloadHub()
	if opts.Watch {
		go watchLoop(opts, hub)
	}

	url := fmt.Sprintf("http://localhost:%d", opts.Port)
	if opts.Open {
		go openBrowser(url)
	}

	fmt.Printf("Serving syllabus site at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	router := newRouter(opts, hub)
	return http.ListenAndServe(fmt.Sprintf(":%d", opts.Port), router)
}

// newRouter builds the chi router for the preview server.
func newRouter(opts ServeOptions, hub *reloadHub) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	if opts.Watch {
		r.Get("/livereload", hub.handleWebSocket)
		r.Get("/livereload.js", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/javascript")
			fmt.Fprint(w, livereloadJS)
		})
	}

	r.Handle("/*", siteHandler(opts.Dir, opts.Watch))

	return r
}

// siteHandler serves the generated site. In watch mode, HTML pages get the
// livereload client script injected before </body>.
func siteHandler(dir string, watch bool) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	if !watch {
		return fs
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := strings.TrimPrefix(r.URL.Path, "/")
		if p == "" || strings.HasSuffix(p, "/") {
			p += "index.html"
		}
		// Clean against a rooted path so ".." segments cannot escape the
		// site directory.
		p = strings.TrimPrefix(path.Clean("/"+p), "/")
		if !strings.HasSuffix(p, ".html") {
			fs.ServeHTTP(w, r)
			return
		}
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(p)))
		if err != nil {
			fs.ServeHTTP(w, r)
			return
		}
		page := string(data)
		if i := strings.LastIndex(page, "</body>"); i >= 0 {
			page = page[:i] + `<script src="/livereload.js" defer></script>` + page[i:]
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
}

// livereloadJS is the browser-side client for the /livereload websocket.
const livereloadJS = `(function () {
  var ws = new WebSocket('ws://' + location.host + '/livereload');
  ws.onmessage = function () { location.reload(); };
})();
`

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadHub tracks connected livereload clients.
type reloadHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newReloadHub() *reloadHub {
	return &reloadHub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *reloadHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	// Drain client messages until the connection closes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("livereload: websocket read: %v", err)
			}
			return
		}
	}
}

// broadcast tells every connected client to reload.
func (h *reloadHub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// watchLoop polls the watch directory for modified files and triggers a
// rebuild plus client reload when anything changes.
func watchLoop(opts ServeOptions, hub *reloadHub) {
	prev := snapshot(opts.WatchDir)
	for {
		time.Sleep(time.Second)
		next := snapshot(opts.WatchDir)
		if changed(prev, next) {
			if opts.OnChange != nil {
				if err := opts.OnChange(); err != nil {
					log.Printf("livereload: rebuild: %v", err)
					prev = next
					continue
				}
			}
			hub.broadcast()
		}
		prev = next
	}
}

// snapshot records the modification state of every file under dir.
func snapshot(dir string) map[string]string {
	state := make(map[string]string)
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		state[path] = fmt.Sprintf("%d-%d", info.Size(), info.ModTime().UnixNano())
		return nil
	})
	return state
}

func changed(prev, next map[string]string) bool {
	if len(prev) != len(next) {
		return true
	}
	for path, state := range next {
		if prev[path] != state {
			return true
		}
	}
	return false
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
