package client_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"github.com/gorilla/mux"

	"github.com/vitamiini-0/matrix-rmapi/core/client"
)

func newEchoRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		response := map[string]string{
			"method": r.Method,
			"header": r.Header.Get("X-Test-Header"),
			"body":   string(body),
		}
		data, _ := json.Marshal(response)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(data)
	}).Methods(http.MethodGet, http.MethodPost, http.MethodPut)
	router.HandleFunc("/teapot", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "I'm a teapot", http.StatusTeapot)
	})
	return router
}

func TestRawGet(t *testing.T) {

	c := client.NewWithRouter(newEchoRouter()).WithHeader("X-Test-Header", "kissa")

	var result map[string]string
	status, err := c.RawGet("/echo", &result)
	if err != nil {
		t.Fatal(err)
	}
	if status != http.StatusOK {
		t.Fatalf("wrong status %d", status)
	}
	if result["method"] != http.MethodGet || result["header"] != "kissa" {
		t.Fatalf("unexpected echo %v", result)
	}
}

func TestRawPostAndPut(t *testing.T) {

	c := client.NewWithRouter(newEchoRouter())

	var result map[string]string
	if _, err := c.RawPost("/echo", map[string]string{"callsign": "NORPPA11a"}, &result); err != nil {
		t.Fatal(err)
	}
	if result["body"] != `{"callsign":"NORPPA11a"}` {
		t.Fatalf("unexpected body echo %q", result["body"])
	}

	// raw byte bodies and raw byte results pass through unmodified
	var raw []byte
	if _, err := c.RawPut("/echo", []byte(`not json at all`), &raw); err != nil {
		t.Fatal(err)
	}
	if len(raw) == 0 {
		t.Fatal("expected raw response bytes")
	}
}

func TestRawGet_ErrorStatus(t *testing.T) {

	c := client.NewWithRouter(newEchoRouter())

	status, err := c.RawGet("/teapot", nil)
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if status != http.StatusTeapot {
		t.Fatalf("wrong status %d", status)
	}
}
