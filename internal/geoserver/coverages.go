package geoserver

import (
	"context"
	"net/http"
	"net/url"
)

// GetCoverages lists the coverages of a coverage store.
func (c *Client) GetCoverages(ctx context.Context, workspace, store string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, coveragesPath(workspace, store)+".json", nil, nil)
}

// GetCoverage returns one coverage.
func (c *Client) GetCoverage(ctx context.Context, workspace, store, name string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, coveragePath(workspace, store, name)+".json", nil, nil)
}

// GetCoverageStore returns one coverage store.
func (c *Client) GetCoverageStore(ctx context.Context, workspace, name string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, coverageStorePath(workspace, name)+".json", nil, nil)
}

// CreateCoverageStore creates a coverage store for raster data.
func (c *Client) CreateCoverageStore(
	ctx context.Context, workspace, name, dataURL, storeType string, enabled bool,
) (any, int, error) {
	payload := map[string]any{
		"coverageStore": map[string]any{
			"name":      name,
			"type":      storeType,
			"enabled":   enabled,
			"workspace": map[string]any{"name": workspace},
			"url":       dataURL,
		},
	}
	return c.restJSON(ctx, http.MethodPost, coverageStoresPath(workspace), nil, payload)
}

// CreateCoverage publishes a coverage layer from a coverage store.
func (c *Client) CreateCoverage(
	ctx context.Context, workspace, store, name, title string,
) (any, int, error) {
	if title == "" {
		title = name
	}
	payload := map[string]any{
		"coverage": map[string]any{
			"name":       name,
			"nativeName": name,
			"title":      title,
			"enabled":    true,
		},
	}
	return c.restJSON(ctx, http.MethodPost, coveragesPath(workspace, store), nil, payload)
}

// DeleteCoverageStore deletes a coverage store and all of its coverages.
func (c *Client) DeleteCoverageStore(ctx context.Context, workspace, name string) (any, int, error) {
	q := url.Values{"recurse": {"true"}}
	return c.restJSON(ctx, http.MethodDelete, coverageStorePath(workspace, name), q, nil)
}

// CreateImageMosaicFromDirectory creates an ImageMosaic coverage store
// from a server-side directory of raster files.
func (c *Client) CreateImageMosaicFromDirectory(
	ctx context.Context, workspace, store, directory string,
) (any, int, error) {
	path := coverageStorePath(workspace, store) + "/external.imagemosaic"
	q := url.Values{"configure": {"all"}}
	return c.restRaw(ctx, http.MethodPut, path, q, "text/plain", []byte(directory))
}

// HarvestGranules adds granules from a directory to an existing
// ImageMosaic store.
func (c *Client) HarvestGranules(
	ctx context.Context, workspace, store, directory string,
) (any, int, error) {
	path := coverageStorePath(workspace, store) + "/external.imagemosaic"
	return c.restRaw(ctx, http.MethodPost, path, nil, "text/plain", []byte(directory))
}

func coverageStoresPath(workspace string) string {
	return workspacePath(workspace) + "/coveragestores"
}

func coverageStorePath(workspace, name string) string {
	return coverageStoresPath(workspace) + "/" + url.PathEscape(name)
}

func coveragesPath(workspace, store string) string {
	return coverageStorePath(workspace, store) + "/coverages"
}

func coveragePath(workspace, store, name string) string {
	return coveragesPath(workspace, store) + "/" + url.PathEscape(name)
}
