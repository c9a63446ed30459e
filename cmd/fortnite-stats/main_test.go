package main

import (
	"bytes"
	"context"
	"fortnite-stats/internal/render"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func newUpstream(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func setEnv(t *testing.T, apiKey, url string) {
	t.Helper()
	t.Setenv("FORTNITE_API_KEY", apiKey)
	t.Setenv("FORTNITE_API_URL", url)
	t.Setenv("FORTNITE_API_VARIANT", "")
	t.Setenv("LOG_LEVEL", "disabled")
	t.Setenv("NO_COLOR", "1")
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, render.Streams{Stdout: &stdout, Stderr: &stderr})
	return code, stdout.String(), stderr.String()
}

func TestRun_MissingAPIKey(t *testing.T) {
	srv, hits := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {})
	setEnv(t, "", srv.URL)

	code, stdout, stderr := runCLI("Ninja")

	if code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if hits.Load() != 0 {
		t.Errorf("upstream hits = %d, want 0", hits.Load())
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "Error: FORTNITE_API_KEY environment variable is required") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_Success(t *testing.T) {
	srv, hits := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"status":200,"data":{"account":{"name":"Ninja","level":5},"stats":{"all":{"wins":10,"matches":20,"kills":50,"winRate":0.5,"kd":2.5,"minutesPlayed":130}}}}`))
	})
	setEnv(t, "test-key", srv.URL)

	code, stdout, stderr := runCLI("Ninja", "epic")

	if code != 0 {
		t.Fatalf("exit = %d, want 0; stderr:\n%s", code, stderr)
	}
	if hits.Load() != 1 {
		t.Errorf("upstream hits = %d, want 1", hits.Load())
	}
	for _, want := range []string{"=== Ninja ===", "Wins: 10", "Win Rate: 50.00%", "K/D: 2.50", "Time Played: 2 hours"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestRun_UpstreamError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv, _ := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				w.Write([]byte(`{"status":0,"error":"upstream says no"}`))
			})
			setEnv(t, "test-key", srv.URL)

			code, stdout, stderr := runCLI("Ninja")

			if code != 1 {
				t.Errorf("exit = %d, want 1", code)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
			if !strings.Contains(stderr, "upstream says no") {
				t.Errorf("stderr = %q, want upstream message", stderr)
			}
		})
	}
}

func TestRun_InvalidAccountType(t *testing.T) {
	srv, hits := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {})
	setEnv(t, "test-key", srv.URL)

	code, _, stderr := runCLI("Ninja", "stadia")

	if code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if hits.Load() != 0 {
		t.Errorf("upstream hits = %d, want 0", hits.Load())
	}
	if !strings.Contains(stderr, "invalid account type 'stadia'") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_LogsGoToStderrStream(t *testing.T) {
	srv, hits := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("timeWindow") == "season" {
			w.Write([]byte(`{"status":200,"data":{"account":{"name":"Ninja"},"stats":{}}}`))
			return
		}
		w.Write([]byte(`{"status":200,"data":{"account":{"name":"Ninja"},"stats":{"all":{"wins":1,"matches":2,"kills":3}}}}`))
	})
	setEnv(t, "test-key", srv.URL)
	t.Setenv("LOG_LEVEL", "info")

	code, stdout, stderr := runCLI("Ninja")

	if code != 0 {
		t.Fatalf("exit = %d, want 0; stderr:\n%s", code, stderr)
	}
	if hits.Load() != 2 {
		t.Errorf("upstream hits = %d, want 2", hits.Load())
	}
	if !strings.Contains(stderr, "no season stats found, trying lifetime stats") {
		t.Errorf("stderr missing fallback log line:\n%s", stderr)
	}
	if strings.Contains(stdout, "trying lifetime stats") {
		t.Errorf("stdout carries log output:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Wins: 1") {
		t.Errorf("stdout missing lifetime stats:\n%s", stdout)
	}
}
