package geoserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// LayerGroupOptions describes a layer group to create.
type LayerGroupOptions struct {
	Layers   []string
	Styles   []string
	Title    string
	Abstract string
	EPSG     int
	Mode     string
}

// GetLayerGroups lists the layer groups of a workspace.
func (c *Client) GetLayerGroups(ctx context.Context, workspace string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, layerGroupsPath(workspace)+".json", nil, nil)
}

// GetLayerGroup returns one layer group.
func (c *Client) GetLayerGroup(ctx context.Context, workspace, name string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, layerGroupPath(workspace, name)+".json", nil, nil)
}

// CreateLayerGroup creates a layer group combining multiple layers.
func (c *Client) CreateLayerGroup(
	ctx context.Context, workspace, name string, opts LayerGroupOptions,
) (any, int, error) {
	mode := opts.Mode
	if mode == "" {
		mode = "SINGLE"
	}
	epsg := opts.EPSG
	if epsg == 0 {
		epsg = 4326
	}
	title := opts.Title
	if title == "" {
		title = name
	}

	published := make([]map[string]any, len(opts.Layers))
	for i, l := range opts.Layers {
		published[i] = map[string]any{
			"@type": "layer",
			"name":  workspace + ":" + l,
		}
	}

	group := map[string]any{
		"name":         name,
		"mode":         mode,
		"title":        title,
		"workspace":    map[string]any{"name": workspace},
		"publishables": map[string]any{"published": published},
		"bounds": map[string]any{
			"minx": -180, "maxx": 180, "miny": -90, "maxy": 90,
			"crs": fmt.Sprintf("EPSG:%d", epsg),
		},
	}
	if opts.Abstract != "" {
		group["abstractTxt"] = opts.Abstract
	}
	if len(opts.Styles) > 0 {
		styles := make([]map[string]any, len(opts.Styles))
		for i, s := range opts.Styles {
			styles[i] = map[string]any{"name": s}
		}
		group["styles"] = map[string]any{"style": styles}
	}
	payload := map[string]any{"layerGroup": group}

	return c.restJSON(ctx, http.MethodPost, layerGroupsPath(workspace), nil, payload)
}

// DeleteLayerGroup deletes a layer group.
func (c *Client) DeleteLayerGroup(ctx context.Context, workspace, name string) (any, int, error) {
	return c.restJSON(ctx, http.MethodDelete, layerGroupPath(workspace, name), nil, nil)
}

func layerGroupsPath(workspace string) string {
	return workspacePath(workspace) + "/layergroups"
}

func layerGroupPath(workspace, name string) string {
	return layerGroupsPath(workspace) + "/" + url.PathEscape(name)
}
