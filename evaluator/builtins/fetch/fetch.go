// Package fetch implements go-script's HTTP client builtin.
package fetch

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-script/heap"
	"go-script/value"
)

// NewFetch builds the fetch builtin bound to h, the allocator that
// owns the response object, its headers sub-object, and every string
// value the handler produces.
//
// Syntax: fetch(url, options)
//
// Options object (all optional):
//   - method: string ("GET", "POST", "PUT", "DELETE", "PATCH", ...) - default: "GET"
//   - headers: object with string key-value pairs
//   - body: string request body (for POST, PUT, PATCH)
func NewFetch(h *heap.Heap) func(args []value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) < 1 || len(args) > 2 {
			return errorObject(h, "fetch requires 1 or 2 arguments (url, options?)"), nil
		}

		url := args[0].String()

		method := "GET"
		headers := make(map[string]string)
		var bodyStr string

		if len(args) == 2 {
			if args[1].Kind != value.OBJECT {
				return errorObject(h, fmt.Sprintf("second argument must be an options object, got %s", args[1].Kind)), nil
			}
			opts := args[1].Heap.(*value.Object)

			if m, ok := opts.OwnField("method"); ok {
				method = m.String()
			}
			if hv, ok := opts.OwnField("headers"); ok && hv.Kind == value.OBJECT {
				hobj := hv.Heap.(*value.Object)
				for _, k := range hobj.Keys() {
					v, _ := hobj.OwnField(k)
					headers[k] = v.String()
				}
			}
			if b, ok := opts.OwnField("body"); ok {
				bodyStr = b.String()
			}
		}

		client := &http.Client{Timeout: 30 * time.Second}

		var bodyReader io.Reader
		if bodyStr != "" {
			bodyReader = bytes.NewBufferString(bodyStr)
		}

		req, err := http.NewRequest(method, url, bodyReader)
		if err != nil {
			return errorObject(h, err.Error()), nil
		}
		for key, v := range headers {
			req.Header.Set(key, v)
		}

		resp, err := client.Do(req)
		if err != nil {
			return errorObject(h, err.Error()), nil
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return errorObject(h, err.Error()), nil
		}

		responseHeaders := h.AllocObject()
		for key, values := range resp.Header {
			if len(values) > 0 {
				responseHeaders.SetOwnField(key, value.StringVal(h.AllocString(values[0])))
			}
		}

		out := h.AllocObject()
		out.SetOwnField("status", value.Int(int64(resp.StatusCode)))
		out.SetOwnField("statusText", value.StringVal(h.AllocString(resp.Status)))
		out.SetOwnField("body", value.StringVal(h.AllocString(string(respBody))))
		out.SetOwnField("headers", value.ObjectVal(responseHeaders))
		out.SetOwnField("ok", value.Bool_(resp.StatusCode >= 200 && resp.StatusCode < 300))
		return value.ObjectVal(out), nil
	}
}

// errorObject reports a fetch failure the same way the language
// observes any other value: as a plain object with an "error" field,
// never a Go error — a failed request is ordinary program data here,
// not a runtime fault.
func errorObject(h *heap.Heap, msg string) value.Value {
	obj := h.AllocObject()
	obj.SetOwnField("error", value.StringVal(h.AllocString(msg)))
	return value.ObjectVal(obj)
}
