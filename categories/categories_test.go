package categories

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
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

func slugParams(slug string) httprouter.Params {
	return httprouter.Params{{Key: "categorySlug", Value: slug}}
}

func TestBySlugFullResponse(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/categories/categoria/MONTANA" {
			w.Write([]byte(`{
				"categoryDetails":{"id":2,"title":"MONTAÑA","description":"Cumbres y senderos"},
				"packages":[{"id":5,"name":"Aconcagua Base","basePrice":300000}]
			}`))
			return
		}
		w.Write([]byte(`[]`))
	})

	w := httptest.NewRecorder()
	h.BySlug(w, httptest.NewRequest(http.MethodGet, "/categories/categoria/montana", nil), slugParams("montana"))

	body := w.Body.String()
	assert.Contains(t, body, "Montaña")
	assert.Contains(t, body, "Cumbres y senderos")
	assert.Contains(t, body, "Aconcagua Base")
	assert.NotContains(t, body, "Faltan la imagen")
}

func TestBySlugDegradedArray(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/categories/categoria/PLAYA" {
			w.Write([]byte(`[{"id":9,"name":"Costa Atlántica","basePrice":80000}]`))
			return
		}
		w.Write([]byte(`[]`))
	})

	w := httptest.NewRecorder()
	h.BySlug(w, httptest.NewRequest(http.MethodGet, "/categories/categoria/playa", nil), slugParams("playa"))

	body := w.Body.String()
	assert.Contains(t, body, "Costa Atlántica")
	assert.Contains(t, body, "Faltan la imagen y la descripción")
}

func TestBySlugLegacyFallback(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/categories/categoria/SELVA":
			w.WriteHeader(http.StatusNotFound)
		case "/paquetes/categoria/selva":
			w.Write([]byte(`[{"id":3,"name":"Iguazú Profundo","basePrice":150000}]`))
		default:
			w.Write([]byte(`[]`))
		}
	})

	w := httptest.NewRecorder()
	h.BySlug(w, httptest.NewRequest(http.MethodGet, "/categories/categoria/selva", nil), slugParams("selva"))

	body := w.Body.String()
	assert.Contains(t, body, "Iguazú Profundo")
	assert.Contains(t, body, "Faltan la imagen y la descripción")
}

func TestBySlugUnauthorized(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/categories/public" {
			w.Write([]byte(`[]`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})

	w := httptest.NewRecorder()
	h.BySlug(w, httptest.NewRequest(http.MethodGet, "/categories/categoria/privada", nil), slugParams("privada"))

	body := w.Body.String()
	assert.Contains(t, body, "Acceso no autorizado")
	assert.Contains(t, body, `href="/login"`)
}

func TestBySlugUnexpectedShape(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/categories/public" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`"?"`))
	})

	w := httptest.NewRecorder()
	h.BySlug(w, httptest.NewRequest(http.MethodGet, "/categories/categoria/rota", nil), slugParams("rota"))

	assert.Contains(t, w.Body.String(), "Respuesta de la API inesperada")
}

func TestBySlugMissingSlug(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	w := httptest.NewRecorder()
	h.BySlug(w, httptest.NewRequest(http.MethodGet, "/categories/categoria/undefined", nil), slugParams("undefined"))

	assert.Contains(t, w.Body.String(), "No se pudo identificar la categoría")
}

func TestIndexListsPublicCategories(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"title":"AVENTURA EXTREMA"},{"id":2,"title":"PLAYA","slug":"costa"}]`))
	})

	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest(http.MethodGet, "/categories", nil), nil)

	body := w.Body.String()
	assert.Contains(t, body, "/categories/categoria/aventura-extrema")
	assert.Contains(t, body, "/categories/categoria/costa")
}
