package geoserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetWMSStore returns one cascaded WMS store.
func (c *Client) GetWMSStore(ctx context.Context, workspace, name string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, wmsStorePath(workspace, name)+".json", nil, nil)
}

// CreateWMSStore creates a cascaded WMS store proxying an external WMS.
func (c *Client) CreateWMSStore(
	ctx context.Context, workspace, name, capabilitiesURL string,
) (any, int, error) {
	payload := map[string]any{
		"wmsStore": map[string]any{
			"name":            name,
			"type":            "WMS",
			"enabled":         true,
			"workspace":       map[string]any{"name": workspace},
			"capabilitiesURL": capabilitiesURL,
		},
	}
	return c.restJSON(ctx, http.MethodPost, wmsStoresPath(workspace), nil, payload)
}

// DeleteWMSStore deletes a WMS store and its layers.
func (c *Client) DeleteWMSStore(ctx context.Context, workspace, name string) (any, int, error) {
	q := url.Values{"recurse": {"true"}}
	return c.restJSON(ctx, http.MethodDelete, wmsStorePath(workspace, name), q, nil)
}

// GetWMSLayer returns one cascaded WMS layer.
func (c *Client) GetWMSLayer(ctx context.Context, workspace, store, layer string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, wmsLayerPath(workspace, store, layer)+".json", nil, nil)
}

// CreateWMSLayer publishes a layer from a cascaded WMS store. An empty
// published name defaults to the native name.
func (c *Client) CreateWMSLayer(
	ctx context.Context, workspace, store, nativeLayer, publishedLayer string,
) (any, int, error) {
	if publishedLayer == "" {
		publishedLayer = nativeLayer
	}
	payload := map[string]any{
		"wmsLayer": map[string]any{
			"name":       publishedLayer,
			"nativeName": nativeLayer,
			"enabled":    true,
		},
	}
	return c.restJSON(ctx, http.MethodPost, wmsLayersPath(workspace, store), nil, payload)
}

// DeleteWMSLayer deletes a cascaded WMS layer.
func (c *Client) DeleteWMSLayer(ctx context.Context, workspace, store, layer string) (any, int, error) {
	q := url.Values{"recurse": {"true"}}
	return c.restJSON(ctx, http.MethodDelete, wmsLayerPath(workspace, store, layer), q, nil)
}

// CreateWMTSStore creates a cascaded WMTS store proxying an external WMTS.
func (c *Client) CreateWMTSStore(
	ctx context.Context, workspace, name, capabilitiesURL string,
) (any, int, error) {
	payload := map[string]any{
		"wmtsStore": map[string]any{
			"name":            name,
			"type":            "WMTS",
			"enabled":         true,
			"workspace":       map[string]any{"name": workspace},
			"capabilitiesURL": capabilitiesURL,
		},
	}
	return c.restJSON(ctx, http.MethodPost, wmtsStoresPath(workspace), nil, payload)
}

// DeleteWMTSStore deletes a WMTS store and its layers.
func (c *Client) DeleteWMTSStore(ctx context.Context, workspace, name string) (any, int, error) {
	q := url.Values{"recurse": {"true"}}
	return c.restJSON(ctx, http.MethodDelete, wmtsStorePath(workspace, name), q, nil)
}

// CreateWMTSLayer publishes a layer from a cascaded WMTS store.
func (c *Client) CreateWMTSLayer(
	ctx context.Context, workspace, store, nativeLayer, publishedLayer string, epsg int,
) (any, int, error) {
	if publishedLayer == "" {
		publishedLayer = nativeLayer
	}
	payload := map[string]any{
		"wmtsLayer": map[string]any{
			"name":       publishedLayer,
			"nativeName": nativeLayer,
			"enabled":    true,
			"srs":        fmt.Sprintf("EPSG:%d", epsg),
		},
	}
	path := wmtsStorePath(workspace, store) + "/layers"
	return c.restJSON(ctx, http.MethodPost, path, nil, payload)
}

func wmsStoresPath(workspace string) string {
	return workspacePath(workspace) + "/wmsstores"
}

func wmsStorePath(workspace, name string) string {
	return wmsStoresPath(workspace) + "/" + url.PathEscape(name)
}

func wmsLayersPath(workspace, store string) string {
	return wmsStorePath(workspace, store) + "/wmslayers"
}

func wmsLayerPath(workspace, store, layer string) string {
	return wmsLayersPath(workspace, store) + "/" + url.PathEscape(layer)
}

func wmtsStoresPath(workspace string) string {
	return workspacePath(workspace) + "/wmtsstores"
}

func wmtsStorePath(workspace, name string) string {
	return wmtsStoresPath(workspace) + "/" + url.PathEscape(name)
}
