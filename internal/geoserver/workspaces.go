package geoserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetVersion returns GeoServer version information.
func (c *Client) GetVersion(ctx context.Context) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, "/rest/about/version.json", nil, nil)
}

// GetWorkspaces lists all workspaces.
func (c *Client) GetWorkspaces(ctx context.Context) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, "/rest/workspaces.json", nil, nil)
}

// GetWorkspace returns one workspace.
func (c *Client) GetWorkspace(ctx context.Context, name string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, workspacePath(name)+".json", nil, nil)
}

// CreateWorkspace creates a workspace, updating it in place when it
// already exists.
func (c *Client) CreateWorkspace(ctx context.Context, name string, isolated bool) (any, int, error) {
	payload := map[string]any{
		"workspace": map[string]any{"name": name, "isolated": isolated},
	}

	content, status, err := c.restJSON(ctx, http.MethodPost, "/rest/workspaces", nil, payload)
	if err != nil || status != http.StatusConflict {
		return content, status, err
	}

	// Already exists: update instead.
	content, status, err = c.restJSON(ctx, http.MethodPut, workspacePath(name), nil, payload)
	if err != nil {
		return content, status, err
	}
	if status == http.StatusOK {
		return fmt.Sprintf("Workspace %s updated", name), status, nil
	}
	return content, status, nil
}

// DeleteWorkspace deletes a workspace and all of its contents.
func (c *Client) DeleteWorkspace(ctx context.Context, name string) (any, int, error) {
	q := url.Values{"recurse": {"true"}}
	return c.restJSON(ctx, http.MethodDelete, workspacePath(name), q, nil)
}

// RecreateWorkspace deletes the workspace if present and creates it fresh.
func (c *Client) RecreateWorkspace(ctx context.Context, name string, isolated bool) (any, int, error) {
	if _, _, err := c.DeleteWorkspace(ctx, name); err != nil {
		return nil, 0, err
	}
	return c.CreateWorkspace(ctx, name, isolated)
}

// GetWorkspaceWmsSettings returns the per-workspace WMS service settings.
func (c *Client) GetWorkspaceWmsSettings(ctx context.Context, name string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, wmsSettingsPath(name)+".json", nil, nil)
}

// PublishWorkspace enables the WMS service for a workspace with default
// settings.
func (c *Client) PublishWorkspace(ctx context.Context, name string) (any, int, error) {
	payload := map[string]any{
		"wms": map[string]any{
			"enabled":   true,
			"name":      "WMS",
			"workspace": map[string]any{"name": name},
		},
	}
	return c.restJSON(ctx, http.MethodPut, wmsSettingsPath(name), nil, payload)
}

// SetDefaultLocale sets the default language for localized WMS requests.
func (c *Client) SetDefaultLocale(ctx context.Context, name, locale string) (any, int, error) {
	payload := map[string]any{
		"wms": map[string]any{"defaultLocale": locale},
	}
	return c.restJSON(ctx, http.MethodPut, wmsSettingsPath(name), nil, payload)
}

func workspacePath(name string) string {
	return "/rest/workspaces/" + url.PathEscape(name)
}

func wmsSettingsPath(name string) string {
	return "/rest/services/wms/workspaces/" + url.PathEscape(name) + "/settings"
}
