package geoserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// DatastoreOptions describes a generic datastore to create.
type DatastoreOptions struct {
	Type                 string
	ConnectionParameters map[string]any
	Description          string
	Enabled              bool
}

// GetDatastores lists the datastores of a workspace.
func (c *Client) GetDatastores(ctx context.Context, workspace string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, datastoresPath(workspace)+".json", nil, nil)
}

// GetDatastore returns one datastore.
func (c *Client) GetDatastore(ctx context.Context, workspace, name string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, datastorePath(workspace, name)+".json", nil, nil)
}

// CreateDatastore creates a datastore with arbitrary connection parameters.
func (c *Client) CreateDatastore(
	ctx context.Context, workspace, name string, opts DatastoreOptions,
) (any, int, error) {
	entries := make([]map[string]any, 0, len(opts.ConnectionParameters))
	for k, v := range opts.ConnectionParameters {
		entries = append(entries, map[string]any{"@key": k, "$": fmt.Sprint(v)})
	}

	ds := map[string]any{
		"name":                 name,
		"type":                 opts.Type,
		"enabled":              opts.Enabled,
		"connectionParameters": map[string]any{"entry": entries},
	}
	if opts.Description != "" {
		ds["description"] = opts.Description
	}
	payload := map[string]any{"dataStore": ds}

	return c.restJSON(ctx, http.MethodPost, datastoresPath(workspace), nil, payload)
}

// PostGISOptions describes a PostGIS datastore connection.
type PostGISOptions struct {
	Host        string
	Port        int
	Database    string
	User        string
	Password    string
	Schema      string
	Description string
}

// CreatePostGISDatastore creates a direct PostGIS connection datastore.
func (c *Client) CreatePostGISDatastore(
	ctx context.Context, workspace, name string, opts PostGISOptions,
) (any, int, error) {
	schema := opts.Schema
	if schema == "" {
		schema = "public"
	}
	return c.CreateDatastore(ctx, workspace, name, DatastoreOptions{
		Type:        "PostGIS",
		Description: opts.Description,
		Enabled:     true,
		ConnectionParameters: map[string]any{
			"dbtype":              "postgis",
			"host":                opts.Host,
			"port":                opts.Port,
			"database":            opts.Database,
			"user":                opts.User,
			"passwd":              opts.Password,
			"schema":              schema,
			"namespace":           c.workspaceNamespace(workspace),
			"Expose primary keys": "true",
			"Estimated extends":   "false",
		},
	})
}

// CreateJNDIDatastore creates a PostGIS datastore backed by a JNDI
// connection pool.
func (c *Client) CreateJNDIDatastore(
	ctx context.Context, workspace, name, jndiReference, schema, description string,
) (any, int, error) {
	if schema == "" {
		schema = "public"
	}
	return c.CreateDatastore(ctx, workspace, name, DatastoreOptions{
		Type:        "PostGIS (JNDI)",
		Description: description,
		Enabled:     true,
		ConnectionParameters: map[string]any{
			"dbtype":              "postgis",
			"jndiReferenceName":   jndiReference,
			"schema":              schema,
			"namespace":           c.workspaceNamespace(workspace),
			"Expose primary keys": "true",
			"Estimated extends":   "false",
		},
	})
}

// CreatePMTilesDatastore creates a datastore over a PMTiles archive.
func (c *Client) CreatePMTilesDatastore(
	ctx context.Context, workspace, name, pmtilesURL, description string,
) (any, int, error) {
	return c.CreateDatastore(ctx, workspace, name, DatastoreOptions{
		Type:        "PMTiles",
		Description: description,
		Enabled:     true,
		ConnectionParameters: map[string]any{
			"pmtiles":   pmtilesURL,
			"namespace": c.workspaceNamespace(workspace),
		},
	})
}

// workspaceNamespace is the default namespace URI GeoServer assigns a
// workspace.
func (c *Client) workspaceNamespace(workspace string) string {
	return "http://" + workspace
}

func datastoresPath(workspace string) string {
	return workspacePath(workspace) + "/datastores"
}

func datastorePath(workspace, name string) string {
	return datastoresPath(workspace) + "/" + url.PathEscape(name)
}
