package linkcheck

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/get-only":
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			w.WriteHeader(http.StatusOK)
		case "/redirect":
			http.Redirect(w, r, "/ok", http.StatusFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	tests := []struct {
		name       string
		path       string
		wantErr    bool
		wantType   ErrorType
		wantStatus int
	}{
		{name: "reachable", path: "/ok"},
		{name: "not found", path: "/missing", wantErr: true, wantType: ErrorTypeStatus, wantStatus: http.StatusNotFound},
		{name: "head not allowed falls back to get", path: "/get-only"},
		{name: "redirect followed", path: "/redirect"},
		{name: "server error", path: "/boom", wantErr: true, wantType: ErrorTypeStatus, wantStatus: http.StatusInternalServerError},
	}

	client := NewClient(5*time.Second, 0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.Check(context.Background(), server.URL+tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var lcErr *LinkCheckError
			if !errors.As(err, &lcErr) {
				t.Fatalf("Check() error type = %T, want *LinkCheckError", err)
			}
			if lcErr.Type != tt.wantType {
				t.Errorf("Check() error type = %v, want %v", lcErr.Type, tt.wantType)
			}
			if lcErr.StatusCode != tt.wantStatus {
				t.Errorf("Check() status = %d, want %d", lcErr.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestCheckUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewClient(time.Second, 0).Check(context.Background(), url)
	if !errors.Is(err, &LinkCheckError{Type: ErrorTypeRequest}) {
		t.Fatalf("Check() error = %v, want request error", err)
	}
}
