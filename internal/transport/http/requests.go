package httptransport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aretw0/registro/pkg/core"
)

// maxBodyBytes caps request bodies; a record is three short strings.
const maxBodyBytes = 1 << 20

var errBodyRequired = errors.New("JSON body required")

// decodePerson reads the {name, control, specialty} request body. The legacy
// keys nombre and especialidad are accepted as well. Field validation is left
// to the store so both front ends share one rule.
func decodePerson(w http.ResponseWriter, r *http.Request) (core.Person, error) {
	if r.Body == nil {
		return core.Person{}, errBodyRequired
	}
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return core.Person{}, errBodyRequired
		}
		return core.Person{}, errors.Join(errBodyRequired, err)
	}
	// null and {} carry no data at all.
	if len(fields) == 0 {
		return core.Person{}, errBodyRequired
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return core.Person{}, errors.Join(errBodyRequired, err)
	}
	var p core.Person
	if err := json.Unmarshal(raw, &p); err != nil {
		return core.Person{}, errors.Join(errBodyRequired, err)
	}
	return p, nil
}
