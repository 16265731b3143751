// Package console implements a thin net/http query shell exposing a search
// form, an HTML result list, and a JSON REST variant, built on gorilla/mux
// routing and unrolled/render templates.
package console

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"

	"github.com/frejajensen9/web-based-search-engine-24/config"
	"github.com/frejajensen9/web-based-search-engine-24/internal/logging"
	"github.com/frejajensen9/web-based-search-engine-24/internal/result"
	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
	"github.com/frejajensen9/web-based-search-engine-24/internal/token"
)

// Route pairs a path pattern with its handler for registration with
// Routes().
type Route struct {
	Path       string
	Methods    []string
	Controller func(w http.ResponseWriter, req *http.Request)
}

// Server holds everything a request handler needs: the index to query, the
// stop-word set to parse queries with, and the render/session helpers.
type Server struct {
	Store     *store.Store
	StopWords token.StopWords
	Origin    result.Origin
	render    *render.Render
}

// NewServer builds a Server and its render engine from
// config.Config.Console.TemplateDirectory, a "layout" base template, with
// development-mode template reloading.
func NewServer(s *store.Store, stopWords token.StopWords, origin result.Origin) *Server {
	return &Server{
		Store:     s,
		StopWords: stopWords,
		Origin:    origin,
		render: render.New(render.Options{
			Directory:     config.Config.Console.TemplateDirectory,
			Layout:        "layout",
			IndentJSON:    true,
			IsDevelopment: true,
		}),
	}
}

// Routes returns this server's route table.
func (s *Server) Routes() []Route {
	return []Route{
		{Path: "/", Methods: []string{"GET"}, Controller: s.Home},
		{Path: "/search", Methods: []string{"GET"}, Controller: s.SearchHTML},
		{Path: "/rest/search", Methods: []string{"GET"}, Controller: s.SearchJSON},
	}
}

// Router builds a gorilla/mux router wired to Routes().
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	for _, route := range s.Routes() {
		router.HandleFunc(route.Path, route.Controller).Methods(route.Methods...)
	}
	return router
}

// ListenAndServe starts the HTTP server on config.Config.Console.Port,
// blocking until it exits.
func (s *Server) ListenAndServe() error {
	addr := fmtAddr(config.Config.Console.Port)
	logging.Info("console listening on %s", addr)
	return http.ListenAndServe(addr, s.Router())
}

func fmtAddr(port int) string {
	return ":" + strconv.Itoa(port)
}

func (s *Server) Home(w http.ResponseWriter, req *http.Request) {
	lastQuery := ""
	if sess, err := GetSession(w, req); err == nil {
		lastQuery = sess.LastQuery()
	}
	s.render.HTML(w, http.StatusOK, "home", map[string]interface{}{
		"LastQuery": lastQuery,
	})
}

func (s *Server) replyServerError(w http.ResponseWriter, err error) {
	logging.Error("rendering 500: %v", err)
	s.render.HTML(w, http.StatusInternalServerError, "serverError", map[string]interface{}{
		"Error": err.Error(),
	})
}
