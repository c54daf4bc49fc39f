package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestCSVFetcher_FetchRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	data := "month,revenue\njan,100\nfeb,-50\nmar,10\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := NewCSVFetcher(path).FetchRows(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].String("month") != "jan" || rows[0].Float("revenue") != 100 {
		t.Errorf("row 1 = %+v", rows[0])
	}
	if rows[1].Float("revenue") != -50 {
		t.Errorf("row 2 revenue = %v", rows[1].Float("revenue"))
	}
}

func TestCSVFetcher_MissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewCSVFetcher(path).FetchRows(context.Background()); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestHTTPFetcher_FetchRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"x":"q1","y":42.5},{"x":"q2","y":-10}]`))
	}))
	defer srv.Close()

	rows, err := NewHTTPFetcher(srv.URL, "secret", "").FetchRows(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].String("x") != "q1" || rows[0].Float("y") != 42.5 {
		t.Errorf("row 1 = %+v", rows[0])
	}
}

func TestHTTPFetcher_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewHTTPFetcher(srv.URL, "", "").FetchRows(context.Background()); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
