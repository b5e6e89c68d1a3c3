package home

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tierranativa/api"
	"tierranativa/session"
	"tierranativa/views"
)

func newHandler(t *testing.T, backend http.HandlerFunc) *Handler {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	tmpl, err := views.LoadTemplates("../web/templates")
	require.NoError(t, err)

	client := api.NewClient(server.URL)
	return &Handler{
		API: client,
		Views: &views.Renderer{
			Templates: tmpl,
			Sessions:  session.NewManager("test-secret"),
			API:       client,
		},
	}
}

func catalogBackend(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/paquetes":
		w.Write([]byte(`[
			{"id":1,"name":"Salta Norte","destination":"Salta","basePrice":99000},
			{"id":2,"name":"Mendoza Clásica","destination":"Mendoza","basePrice":120000},
			{"id":3,"name":"Mendoza Premium","destination":"mendoza","basePrice":210000}
		]`))
	case "/categories/public":
		w.Write([]byte(`[{"id":1,"title":"MONTAÑA"}]`))
	default:
		http.NotFound(w, r)
	}
}

func TestIndexFiltersByDestination(t *testing.T) {
	h := newHandler(t, catalogBackend)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/home?destino=Mendoza", nil)
	h.Index(w, r, nil)

	body := w.Body.String()
	assert.Contains(t, body, "Mendoza Clásica")
	assert.Contains(t, body, "Mendoza Premium")
	assert.NotContains(t, body, "Salta Norte")
	// nav menu fed from the public category list, slug derived
	assert.Contains(t, body, "/categories/categoria/montana")
}

func TestIndexBackendDown(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest(http.MethodGet, "/home", nil), nil)

	assert.Contains(t, w.Body.String(), "Reintentar")
}

func TestSuggestions(t *testing.T) {
	h := newHandler(t, catalogBackend)

	w := httptest.NewRecorder()
	h.Suggestions(w, httptest.NewRequest(http.MethodGet, "/api/search/suggestions?q=men", nil), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, []string{"Mendoza"}, payload.Suggestions)
}
