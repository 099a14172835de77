package admin

import (
	"encoding/json"
	"net/http"

	"github.com/unrolled/render"
)

func writeJSONError(rnd *render.Render, w http.ResponseWriter, status int, message string) {
	_ = rnd.JSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
