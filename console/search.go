package console

import (
	"net/http"

	"github.com/frejajensen9/web-based-search-engine-24/config"
	"github.com/frejajensen9/web-based-search-engine-24/query"
)

// restErrorResponse is the non-200 JSON body shape for REST endpoint
// errors: a version tag plus a machine-readable error tag and a human
// message.
type restErrorResponse struct {
	Version int    `json:"version"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func buildError(tag, message string) *restErrorResponse {
	return &restErrorResponse{Version: 1, Tag: tag, Message: message}
}

// SearchHTML runs the query from ?q= and renders an HTML result list,
// remembering the query and trimming to the session's results-per-page
// preference.
func (s *Server) SearchHTML(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query().Get("q")
	results, err := query.Search(s.Store, q, s.StopWords, s.Origin, config.Config.Console.ResultCacheSize)
	if err != nil {
		s.replyServerError(w, err)
		return
	}

	perPage := DefaultResultsPerPage
	if sess, err := GetSession(w, req); err == nil {
		sess.SetLastQuery(q)
		perPage = sess.ResultsPerPage()
	}
	if perPage > 0 && len(results) > perPage {
		results = results[:perPage]
	}

	s.render.HTML(w, http.StatusOK, "results", map[string]interface{}{
		"Query":   q,
		"Results": results,
	})
}

// restSearchResponse is the JSON shape of a successful /rest/search call,
// matching the search() entry point's Result fields field-for-field.
type restSearchResponse struct {
	Version int           `json:"version"`
	Query   string        `json:"query"`
	Results []restResult  `json:"results"`
}

type restResult struct {
	URL             string `json:"url"`
	Title           string `json:"title"`
	LastModified    string `json:"lastModified"`
	Size            int64  `json:"size"`
	Keywords        string `json:"keywords"`
	ParentLinks     string `json:"parentLinks"`
	ChildLinks      string `json:"childLinks"`
	Score           float64 `json:"score"`
	NormalizedScore int    `json:"normalizedScore"`
}

// SearchJSON runs the query from ?q= and renders the Result shape as JSON,
// the REST variant of SearchHTML.
func (s *Server) SearchJSON(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query().Get("q")
	if q == "" {
		s.render.JSON(w, http.StatusBadRequest, buildError("empty-query", "q must not be empty"))
		return
	}

	results, err := query.Search(s.Store, q, s.StopWords, s.Origin, config.Config.Console.ResultCacheSize)
	if err != nil {
		s.render.JSON(w, http.StatusInternalServerError, buildError("search-failed", err.Error()))
		return
	}

	out := make([]restResult, len(results))
	for i, r := range results {
		out[i] = restResult{
			URL:             r.URL,
			Title:           r.Title,
			LastModified:    r.LastModified,
			Size:            r.Size,
			Keywords:        joinKeywords(r.Keywords),
			ParentLinks:     joinStrings(r.ParentLinks),
			ChildLinks:      joinStrings(r.ChildLinks),
			Score:           r.Score,
			NormalizedScore: r.NormalizedScore,
		}
	}

	s.render.JSON(w, http.StatusOK, restSearchResponse{Version: 1, Query: q, Results: out})
}
