package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
)

// notFound answers unknown routes and unsupported methods alike with a JSON
// 404, so a wrong method does not reveal that the path exists.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
