package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	flagkit "github.com/flagkit/flagkit-go"
	"github.com/flagkit/flagkit-go/flagengine/evalcontext"
)

const configuration = `{
  "flags": [
    {"name": "secret_button", "default": true},
    {
      "name": "beta_dashboard",
      "combinator": "ANY",
      "filters": [
        {"kind": "targeting", "parameters": {"users": ["alice"], "groups": [{"name": "beta", "percentage": 50}]}},
        {"kind": "percentage", "parameters": {"threshold": 10}}
      ]
    },
    {
      "name": "english_banner",
      "filters": [
        {"kind": "language", "parameters": {"allowed": ["en-GB", "en-US"]}}
      ]
    },
    {
      "name": "summer_sale",
      "filters": [
        {"kind": "time_window", "parameters": {"start": "2024-06-01", "end": "2024-09-01"}}
      ]
    }
  ]
}`

func main() {
	client := flagkit.New(
		flagkit.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
	)
	if err := client.LoadConfiguration([]byte(configuration)); err != nil {
		log.Fatal(err)
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		ec := contextFromRequest(r)
		for _, config := range client.Flags() {
			enabled, err := client.IsEnabled(config.Name, ec)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			fmt.Fprintf(w, "%s: %t\n", config.Name, enabled)
		}
	})

	fmt.Println("Starting server at port 5000")
	if err := http.ListenAndServe(":5000", nil); err != nil {
		log.Fatal(err)
	}
}

// contextFromRequest shows the caller's side of the contract: the handler
// decides what goes into the evaluation context, the engine never touches the
// request itself.
func contextFromRequest(r *http.Request) evalcontext.Context {
	ec := evalcontext.NewContext(r.URL.Query().Get("user"), map[string]any{
		"accept_language": r.Header.Get("Accept-Language"),
	})
	if groups, ok := r.URL.Query()["group"]; ok {
		ec = ec.WithGroups(groups...)
	}
	return ec
}
