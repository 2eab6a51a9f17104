// Package fetch mirrors the remote dataset into the local data
// directory and talks to the image describe service.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/RoroDev2023/RizzTheGrid/internal/config"
	"github.com/RoroDev2023/RizzTheGrid/internal/dataset"
	applog "github.com/RoroDev2023/RizzTheGrid/internal/log"
)

// Client downloads dataset files and forwards describe requests.
type Client struct {
	Endpoints config.EndpointsConfig
	Layout    dataset.Layout
	Key       string // describe API key

	http *http.Client
}

// NewClient builds a client from the app config. The describe key is
// resolved once, from the environment or the OS keyring.
func NewClient(cfg config.Config) *Client {
	return &Client{
		Endpoints: cfg.Endpoints,
		Layout:    dataset.Layout{Root: cfg.DataDir},
		Key:       config.DescribeKey(),
		http:      &http.Client{Timeout: cfg.Timeout()},
	}
}

// SyncZones refreshes the local zone outlines file.
func (c *Client) SyncZones(ctx context.Context) error {
	return c.download(ctx, c.Endpoints.ZonesURL, c.Layout.ZonesPath())
}

// SyncMetrics refreshes the local metrics CSV.
func (c *Client) SyncMetrics(ctx context.Context) error {
	return c.download(ctx, c.Endpoints.MetricsURL, c.Layout.MetricsPath())
}

// SyncManifest refreshes the local photo manifest.
func (c *Client) SyncManifest(ctx context.Context) error {
	return c.download(ctx, c.Endpoints.ManifestURL, c.Layout.ManifestPath())
}

// SyncAll refreshes outlines, metrics and the manifest, then fills in
// any photos the manifest lists that are missing locally.
func (c *Client) SyncAll(ctx context.Context) error {
	start := time.Now()
	if err := c.SyncZones(ctx); err != nil {
		return err
	}
	if err := c.SyncMetrics(ctx); err != nil {
		return err
	}
	if err := c.SyncManifest(ctx); err != nil {
		return err
	}
	n, err := c.SyncImages(ctx)
	if err != nil {
		return err
	}
	applog.WithComponent("fetch").Info("dataset synced",
		"dir", c.Layout.Root, "new_images", n, "elapsed", time.Since(start))
	return nil
}

// SyncImages downloads manifest photos that are not on disk yet and
// reports how many it fetched. Files already present are left alone.
func (c *Client) SyncImages(ctx context.Context) (int, error) {
	m, err := dataset.LoadManifest(c.Layout.ManifestPath())
	if err != nil {
		return 0, err
	}
	fetched := 0
	for _, zp := range m.Zones {
		for _, ph := range zp.Images {
			path := c.Layout.ImagePath(zp.Zone, ph.File)
			if _, err := os.Stat(path); err == nil {
				continue
			}
			if err := c.download(ctx, ph.URL, path); err != nil {
				return fetched, fmt.Errorf("image %s/%s: %w", zp.Zone, ph.File, err)
			}
			fetched++
		}
	}
	return fetched, nil
}

// download GETs url and writes the body to path via a temp file, so a
// half-finished transfer never clobbers a good copy.
func (c *Client) download(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".fetch-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
