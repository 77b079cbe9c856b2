package fetch

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr"

	"go-script/heap"
	"go-script/value"
)

func newFetch() func(args []value.Value) (value.Value, error) {
	return NewFetch(heap.New(1024, logr.Discard()))
}

func field(t *testing.T, obj *value.Object, name string) value.Value {
	t.Helper()
	v, ok := obj.OwnField(name)
	if !ok {
		t.Fatalf("expected field %q to be set", name)
	}
	return v
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "success"}`))
	}))
	defer server.Close()

	result, err := newFetch()([]value.Value{value.StringLiteral(server.URL)})
	if err != nil {
		t.Fatalf("fetch returned error: %v", err)
	}
	if result.Kind != value.OBJECT {
		t.Fatalf("expected an object, got %s", result.Kind)
	}
	obj := result.Heap.(*value.Object)

	if status := field(t, obj, "status"); status.Int != 200 {
		t.Errorf("expected status 200, got %v", status)
	}
	if body := field(t, obj, "body"); body.Str != `{"message": "success"}` {
		t.Errorf("expected body %q, got %q", `{"message": "success"}`, body.Str)
	}
	if ok := field(t, obj, "ok"); !ok.Bool {
		t.Errorf("expected ok=true, got %v", ok)
	}
}

func TestFetchNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`Not Found`))
	}))
	defer server.Close()

	result, err := newFetch()([]value.Value{value.StringLiteral(server.URL)})
	if err != nil {
		t.Fatalf("fetch returned error: %v", err)
	}
	obj := result.Heap.(*value.Object)

	if status := field(t, obj, "status"); status.Int != 404 {
		t.Errorf("expected status 404, got %v", status)
	}
	if ok := field(t, obj, "ok"); ok.Bool {
		t.Errorf("expected ok=false, got %v", ok)
	}
}

func TestFetchInvalidURL(t *testing.T) {
	result, err := newFetch()([]value.Value{value.StringLiteral("not-a-valid-url")})
	if err != nil {
		t.Fatalf("fetch returned a Go error instead of an error object: %v", err)
	}
	obj := result.Heap.(*value.Object)
	if _, ok := obj.OwnField("error"); !ok {
		t.Errorf("expected an error field")
	}
}

func TestFetchNoArgs(t *testing.T) {
	result, err := newFetch()(nil)
	if err != nil {
		t.Fatalf("fetch returned error: %v", err)
	}
	obj := result.Heap.(*value.Object)
	errField := field(t, obj, "error")
	if errField.Str != "fetch requires 1 or 2 arguments (url, options?)" {
		t.Errorf("unexpected error message: %q", errField.Str)
	}
}

func TestFetchTooManyArgs(t *testing.T) {
	result, err := newFetch()([]value.Value{value.StringLiteral("a"), value.StringLiteral("b"), value.StringLiteral("c")})
	if err != nil {
		t.Fatalf("fetch returned error: %v", err)
	}
	obj := result.Heap.(*value.Object)
	errField := field(t, obj, "error")
	if errField.Str != "fetch requires 1 or 2 arguments (url, options?)" {
		t.Errorf("unexpected error message: %q", errField.Str)
	}
}

func TestFetchStatusCodes(t *testing.T) {
	tests := []struct {
		statusCode int
		expectedOk bool
	}{
		{200, true},
		{201, true},
		{204, true},
		{299, true},
		{300, false},
		{400, false},
		{404, false},
		{500, false},
	}

	fetch := newFetch()
	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.statusCode)
			w.Write([]byte("test"))
		}))

		result, err := fetch([]value.Value{value.StringLiteral(server.URL)})
		if err != nil {
			t.Fatalf("fetch returned error: %v", err)
		}
		obj := result.Heap.(*value.Object)

		if status := field(t, obj, "status"); int(status.Int) != tt.statusCode {
			t.Errorf("expected status %d, got %v", tt.statusCode, status)
		}
		if ok := field(t, obj, "ok"); ok.Bool != tt.expectedOk {
			t.Errorf("for status %d, expected ok=%v, got %v", tt.statusCode, tt.expectedOk, ok.Bool)
		}

		server.Close()
	}
}

func TestFetchWithCustomMethod(t *testing.T) {
	fetch := newFetch()
	methods := []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

	for _, method := range methods {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(r.Method))
		}))

		opts := value.NewObject()
		opts.SetOwnField("method", value.StringLiteral(method))

		result, err := fetch([]value.Value{value.StringLiteral(server.URL), value.ObjectVal(opts)})
		if err != nil {
			t.Fatalf("fetch returned error: %v", err)
		}
		obj := result.Heap.(*value.Object)

		if body := field(t, obj, "body"); body.Str != method {
			t.Errorf("expected method %s, got %s", method, body.Str)
		}

		server.Close()
	}
}

func TestFetchWithHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		contentType := r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(authHeader + "|" + contentType))
	}))
	defer server.Close()

	reqHeaders := value.NewObject()
	reqHeaders.SetOwnField("Authorization", value.StringLiteral("Bearer token123"))
	reqHeaders.SetOwnField("Content-Type", value.StringLiteral("application/json"))

	opts := value.NewObject()
	opts.SetOwnField("headers", value.ObjectVal(reqHeaders))

	result, err := newFetch()([]value.Value{value.StringLiteral(server.URL), value.ObjectVal(opts)})
	if err != nil {
		t.Fatalf("fetch returned error: %v", err)
	}
	obj := result.Heap.(*value.Object)

	expected := "Bearer token123|application/json"
	if body := field(t, obj, "body"); body.Str != expected {
		t.Errorf("expected body %q, got %q", expected, body.Str)
	}
}

func TestFetchWithBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write(bodyBytes)
	}))
	defer server.Close()

	requestBody := `{"name": "Alice", "age": 30}`
	opts := value.NewObject()
	opts.SetOwnField("method", value.StringLiteral("POST"))
	opts.SetOwnField("body", value.StringLiteral(requestBody))

	result, err := newFetch()([]value.Value{value.StringLiteral(server.URL), value.ObjectVal(opts)})
	if err != nil {
		t.Fatalf("fetch returned error: %v", err)
	}
	obj := result.Heap.(*value.Object)

	if body := field(t, obj, "body"); body.Str != requestBody {
		t.Errorf("expected body %q, got %q", requestBody, body.Str)
	}
}

func TestFetchResponseHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Custom-Header", "test-value")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	result, err := newFetch()([]value.Value{value.StringLiteral(server.URL)})
	if err != nil {
		t.Fatalf("fetch returned error: %v", err)
	}
	obj := result.Heap.(*value.Object)

	headersVal := field(t, obj, "headers")
	if headersVal.Kind != value.OBJECT {
		t.Fatalf("expected headers to be an object, got %s", headersVal.Kind)
	}
	headers := headersVal.Heap.(*value.Object)

	if custom := field(t, headers, "X-Custom-Header"); custom.Str != "test-value" {
		t.Errorf("expected X-Custom-Header=test-value, got %v", custom.Str)
	}
	if ct := field(t, headers, "Content-Type"); ct.Str != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %v", ct.Str)
	}
}

func TestFetchComplexRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST method, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected Content-Type header")
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("expected Authorization header")
		}

		bodyBytes, _ := io.ReadAll(r.Body)
		w.Header().Set("X-Response-Id", "123")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true, "echo": "` + string(bodyBytes) + `"}`))
	}))
	defer server.Close()

	reqHeaders := value.NewObject()
	reqHeaders.SetOwnField("Content-Type", value.StringLiteral("application/json"))
	reqHeaders.SetOwnField("Authorization", value.StringLiteral("Bearer secret"))

	opts := value.NewObject()
	opts.SetOwnField("method", value.StringLiteral("POST"))
	opts.SetOwnField("headers", value.ObjectVal(reqHeaders))
	opts.SetOwnField("body", value.StringLiteral(`{"action": "create", "data": "test"}`))

	result, err := newFetch()([]value.Value{value.StringLiteral(server.URL), value.ObjectVal(opts)})
	if err != nil {
		t.Fatalf("fetch returned error: %v", err)
	}
	obj := result.Heap.(*value.Object)

	if status := field(t, obj, "status"); status.Int != 201 {
		t.Errorf("expected status 201, got %v", status)
	}
	if ok := field(t, obj, "ok"); !ok.Bool {
		t.Errorf("expected ok=true")
	}

	body := field(t, obj, "body")
	if !containsSubstring(body.Str, "success") {
		t.Errorf("expected body to contain 'success', got %q", body.Str)
	}

	headers := field(t, obj, "headers").Heap.(*value.Object)
	if id := field(t, headers, "X-Response-Id"); id.Str != "123" {
		t.Errorf("expected X-Response-Id=123, got %v", id.Str)
	}
}

func TestFetchInvalidOptions(t *testing.T) {
	result, err := newFetch()([]value.Value{value.StringLiteral("http://example.com"), value.StringLiteral("not-an-object")})
	if err != nil {
		t.Fatalf("fetch returned error: %v", err)
	}
	obj := result.Heap.(*value.Object)
	errField := field(t, obj, "error")
	if len(errField.Str) == 0 {
		t.Errorf("expected a non-empty error message")
	}
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
