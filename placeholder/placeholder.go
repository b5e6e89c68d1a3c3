// Package placeholder serves the neutral fallback images referenced when a
// package or category has no usable picture, so pages never depend on an
// external placeholder CDN.
package placeholder

import (
	"bytes"
	"image/color"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

const maxDim = 2000

var (
	mu    sync.Mutex
	cache = map[string][]byte{}
)

// Serve answers GET /static/placeholder/:dims where dims is "WxH.png".
// Unparseable dims fall back to 800x600.
func Serve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	width, height := parseDims(ps.ByName("dims"))

	key := strconv.Itoa(width) + "x" + strconv.Itoa(height)
	mu.Lock()
	png, ok := cache[key]
	mu.Unlock()

	if !ok {
		img := imaging.New(width, height, color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF})
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			http.Error(w, "failed to render placeholder", http.StatusInternalServerError)
			return
		}
		png = buf.Bytes()
		mu.Lock()
		cache[key] = png
		mu.Unlock()
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(png)
}

func parseDims(dims string) (int, int) {
	dims = strings.TrimSuffix(strings.TrimPrefix(dims, "/"), ".png")
	parts := strings.SplitN(dims, "x", 2)
	if len(parts) != 2 {
		return 800, 600
	}
	width, err1 := strconv.Atoi(parts[0])
	height, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || width < 1 || height < 1 || width > maxDim || height > maxDim {
		return 800, 600
	}
	return width, height
}
