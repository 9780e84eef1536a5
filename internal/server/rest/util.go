package rest

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrijs2005/videoclub/internal/common"
	"github.com/dmitrijs2005/videoclub/internal/server/billing"
)

const maxBodyBytes = 1 << 20

var printer = message.NewPrinter(language.English)

type envelope struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fields holds the string parameters of a request body.
type fields map[string]string

// readFields accepts a flat JSON object or a urlencoded/multipart form.
func readFields(w http.ResponseWriter, r *http.Request) (fields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		f := fields{}
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidRequest, err)
		}
		return f, nil
	}

	if ct == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidRequest, err)
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidRequest, err)
	}

	f := fields{}
	for k := range r.PostForm {
		f[k] = r.PostForm.Get(k)
	}
	return f, nil
}

// formatDollars renders whole dollars with thousands separators: $8,000,000.
func formatDollars(v int64) string {
	return printer.Sprintf("$%d", v)
}

// formatEuros renders an amount with one decimal: €1,234.5.
func formatEuros(a billing.Amount) string {
	return printer.Sprintf("€%.1f", a.Euros())
}

func formatRuntime(minutes float64) string {
	return fmt.Sprintf("%d minutes", int64(minutes))
}

// nonNil keeps empty lists rendering as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
