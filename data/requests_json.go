package data

import "encoding/json"

// MarshalJSON adds the derived priority label to the wire form of a request.
func (r Request) MarshalJSON() ([]byte, error) {
	type request Request
	return json.Marshal(struct {
		request
		Priority string `json:"priority"`
	}{request(r), r.Priority().Label})
}
