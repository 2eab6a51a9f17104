package fetch

import (
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/RoroDev2023/RizzTheGrid/internal/config"
	"github.com/RoroDev2023/RizzTheGrid/internal/dataset"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/zones.geojson", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	})
	mux.HandleFunc("/metrics.csv", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("zone,name\n"))
	})
	mux.HandleFunc("/manifest.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"zones":[{"zone":"DE","images":[{"file":"plant.png","url":"` +
			srv.URL + `/img/plant.png"}]}]}`))
	})
	mux.HandleFunc("/img/plant.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("PNGDATA"))
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(srvURL, dir string) config.Config {
	cfg := config.Defaults()
	cfg.DataDir = dir
	cfg.Endpoints.ZonesURL = srvURL + "/zones.geojson"
	cfg.Endpoints.MetricsURL = srvURL + "/metrics.csv"
	cfg.Endpoints.ManifestURL = srvURL + "/manifest.json"
	cfg.Endpoints.DescribeURL = srvURL + "/describe"
	cfg.Endpoints.TimeoutMs = 5000
	return cfg
}

func TestSyncAllWritesDataset(t *testing.T) {
	srv := testServer(t)
	dir := t.TempDir()
	t.Setenv(config.EnvDescribeKey, "unused")
	c := NewClient(testConfig(srv.URL, dir))

	if err := c.SyncAll(context.Background()); err != nil {
		t.Fatalf("SyncAll: %v", err)
	}
	l := dataset.Layout{Root: dir}
	for _, path := range []string{l.ZonesPath(), l.MetricsPath(), l.ManifestPath()} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing %s after sync", path)
		}
	}
	img, err := os.ReadFile(l.ImagePath("DE", "plant.png"))
	if err != nil {
		t.Fatalf("image not fetched: %v", err)
	}
	if string(img) != "PNGDATA" {
		t.Errorf("image body = %q", img)
	}

	// A second pass finds everything in place and downloads nothing.
	n, err := c.SyncImages(context.Background())
	if err != nil {
		t.Fatalf("SyncImages: %v", err)
	}
	if n != 0 {
		t.Errorf("refetched %d images, want 0", n)
	}
}

func TestDownloadReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()
	c := &Client{
		Endpoints: config.EndpointsConfig{ZonesURL: srv.URL + "/zones.geojson"},
		Layout:    dataset.Layout{Root: t.TempDir()},
		http:      &http.Client{Timeout: 5 * time.Second},
	}
	err := c.SyncZones(context.Background())
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("SyncZones err = %v, want 404 status", err)
	}
	if _, statErr := os.Stat(c.Layout.ZonesPath()); statErr == nil {
		t.Error("failed download left a file behind")
	}
}

func TestDescribeFile(t *testing.T) {
	var gotAuth, gotType, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotReqID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"summary":"Wind turbines along a ridge."}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "ridge.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	c := &Client{
		Endpoints: config.EndpointsConfig{DescribeURL: srv.URL},
		Key:       "sk-test",
		http:      &http.Client{Timeout: 5 * time.Second},
	}
	summary, err := c.DescribeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DescribeFile: %v", err)
	}
	if summary != "Wind turbines along a ridge." {
		t.Errorf("summary = %q", summary)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotType != "image/png" {
		t.Errorf("Content-Type = %q", gotType)
	}
	if gotReqID == "" {
		t.Error("X-Request-Id missing")
	}
}

func TestDescribeRequiresKey(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if _, err := c.Describe(context.Background(), []byte("x"), "image/png"); !errors.Is(err, ErrNoDescribeKey) {
		t.Errorf("err = %v, want ErrNoDescribeKey", err)
	}
}

func TestDescribeReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()
	c := &Client{
		Endpoints: config.EndpointsConfig{DescribeURL: srv.URL},
		Key:       "sk-test",
		http:      &http.Client{Timeout: 5 * time.Second},
	}
	if _, err := c.Describe(context.Background(), []byte("x"), "image/jpeg"); err == nil {
		t.Error("Describe accepted a 429 response")
	}
}
