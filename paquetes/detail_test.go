package paquetes

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

const packagePayload = `{
	"id":5,
	"name":"Glaciares del Sur",
	"shortDescription":"Cuatro días entre hielos milenarios.",
	"basePrice":450000,
	"destination":"El Calafate",
	"characteristicIds":[1,3],
	"itineraryDetail":{
		"duration":"4 días / 3 noches",
		"lodgingType":"Hostería 3 estrellas",
		"dailyActivitiesDescription":"Día 1: Llegada y city tour. Día 2: Perito Moreno.",
		"generalRecommendations":"Llevar abrigo. Calzado impermeable."
	},
	"imageDetails":[
		{"id":1,"imageUrl":"https://img/glaciar-main.jpg","principal":true},
		{"id":2,"imageUrl":"https://img/glaciar-2.jpg"}
	]
}`

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

func idParams(id string) httprouter.Params {
	return httprouter.Params{{Key: "id", Value: id}}
}

func catalogBackend(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/paquetes/5":
		w.Write([]byte(packagePayload))
	case "/characteristics/public":
		w.Write([]byte(`[
			{"id":1,"title":"Guía bilingüe","icon":"map"},
			{"id":2,"title":"Wifi","icon":"wifi"},
			{"id":3,"title":"Traslados","icon":"bus"}
		]`))
	case "/categories/public":
		w.Write([]byte(`[]`))
	default:
		http.NotFound(w, r)
	}
}

func TestDetailRendersItinerary(t *testing.T) {
	h := newHandler(t, catalogBackend)

	w := httptest.NewRecorder()
	h.Detail(w, httptest.NewRequest(http.MethodGet, "/detallePaquete/5", nil), idParams("5"))

	body := w.Body.String()
	assert.Contains(t, body, "Glaciares del Sur")
	assert.Contains(t, body, "https://img/glaciar-main.jpg")
	assert.Contains(t, body, "Día 1:")
	assert.Contains(t, body, "Perito Moreno")
	assert.Contains(t, body, "Llevar abrigo.")
	// resolved characteristics, not the whole catalog
	assert.Contains(t, body, "Guía bilingüe")
	assert.Contains(t, body, "Traslados")
	assert.NotContains(t, body, "Wifi")
	// PDF download link
	assert.Contains(t, body, "/detallePaquete/5/itinerario.pdf")
}

func TestDetailNotFound(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/categories/public" {
			w.Write([]byte(`[]`))
			return
		}
		http.NotFound(w, r)
	})

	w := httptest.NewRecorder()
	h.Detail(w, httptest.NewRequest(http.MethodGet, "/detallePaquete/99", nil), idParams("99"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no existe o fue eliminado")
}

func TestDetailCharacteristicCatalogDown(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/paquetes/5":
			w.Write([]byte(packagePayload))
		case "/categories/public":
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	w := httptest.NewRecorder()
	h.Detail(w, httptest.NewRequest(http.MethodGet, "/detallePaquete/5", nil), idParams("5"))

	// page renders without the amenity list
	assert.Contains(t, w.Body.String(), "Glaciares del Sur")
	assert.NotContains(t, w.Body.String(), "Guía bilingüe")
}

func TestDetailBadID(t *testing.T) {
	h := newHandler(t, catalogBackend)

	w := httptest.NewRecorder()
	h.Detail(w, httptest.NewRequest(http.MethodGet, "/detallePaquete/abc", nil), idParams("abc"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItineraryPDF(t *testing.T) {
	h := newHandler(t, catalogBackend)

	w := httptest.NewRecorder()
	h.ItineraryPDF(w, httptest.NewRequest(http.MethodGet, "/detallePaquete/5/itinerario.pdf", nil), idParams("5"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "itinerario-5.pdf")
	assert.True(t, len(w.Body.Bytes()) > 500, "pdf should have real content")
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}
