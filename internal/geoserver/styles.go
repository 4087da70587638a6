package geoserver

import (
	"context"
	"net/http"
	"net/url"
)

const sldContentType = "application/vnd.ogc.sld+xml"

// GetStyles lists styles. An empty workspace lists global styles.
func (c *Client) GetStyles(ctx context.Context, workspace string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, stylesPath(workspace)+".json", nil, nil)
}

// GetStyleDefinition returns the SLD document of a style.
func (c *Client) GetStyleDefinition(ctx context.Context, workspace, name string) (any, int, error) {
	return c.restRaw(ctx, http.MethodGet, stylePath(workspace, name)+".sld", nil, "", nil)
}

// CreateStyleFromSLD creates a style from an SLD document, replacing an
// existing style of the same name.
func (c *Client) CreateStyleFromSLD(
	ctx context.Context, workspace, name, sld string,
) (any, int, error) {
	q := url.Values{"name": {name}}
	content, status, err := c.restRaw(
		ctx, http.MethodPost, stylesPath(workspace), q, sldContentType, []byte(sld),
	)
	if err != nil {
		return content, status, err
	}
	if status != http.StatusForbidden && status != http.StatusConflict {
		return content, status, nil
	}

	// Style exists: replace its definition.
	return c.restRaw(ctx, http.MethodPut, stylePath(workspace, name), nil, sldContentType, []byte(sld))
}

// SetDefaultLayerStyle sets the default style of a layer.
func (c *Client) SetDefaultLayerStyle(
	ctx context.Context, workspace, layer, style string,
) (any, int, error) {
	path := "/rest/layers/" + url.PathEscape(workspace+":"+layer)
	payload := map[string]any{
		"layer": map[string]any{
			"defaultStyle": map[string]any{"name": style},
		},
	}
	return c.restJSON(ctx, http.MethodPut, path, nil, payload)
}

func stylesPath(workspace string) string {
	if workspace == "" {
		return "/rest/styles"
	}
	return workspacePath(workspace) + "/styles"
}

func stylePath(workspace, name string) string {
	return stylesPath(workspace) + "/" + url.PathEscape(name)
}
