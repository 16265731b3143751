package console

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/frejajensen9/web-based-search-engine-24/config"
)

// DefaultResultsPerPage is used when a session has not yet set a
// preference.
const DefaultResultsPerPage = 10

var sessionStore = sessions.NewCookieStore([]byte(config.Config.Console.SessionSecret))

// Session wraps one request's cookie-backed session, used to remember the
// last query and the results-per-page preference across requests.
type Session struct {
	req  *http.Request
	w    http.ResponseWriter
	sess *sessions.Session
}

// GetSession loads (or creates) the session for this request.
func GetSession(w http.ResponseWriter, req *http.Request) (*Session, error) {
	sess, err := sessionStore.Get(req, "search-session")
	if err != nil {
		return nil, err
	}
	return &Session{req: req, w: w, sess: sess}, nil
}

func (s *Session) save() {
	_ = s.sess.Save(s.req, s.w)
}

// LastQuery returns the most recent search query this session ran, or "".
func (s *Session) LastQuery() string {
	if v, ok := s.sess.Values["lastQuery"].(string); ok {
		return v
	}
	return ""
}

// SetLastQuery records q as the session's most recent query.
func (s *Session) SetLastQuery(q string) {
	s.sess.Values["lastQuery"] = q
	s.save()
}

// ResultsPerPage returns the session's results-per-page preference.
func (s *Session) ResultsPerPage() int {
	if v, ok := s.sess.Values["resultsPerPage"].(int); ok {
		return v
	}
	return DefaultResultsPerPage
}

// SetResultsPerPage records the session's results-per-page preference.
func (s *Session) SetResultsPerPage(n int) {
	s.sess.Values["resultsPerPage"] = n
	s.save()
}
