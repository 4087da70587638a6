package geoserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// FeatureTypeOptions describes a vector layer to publish from a
// datastore table.
type FeatureTypeOptions struct {
	Title    string
	Abstract string
	EPSG     int
	Keywords []string
}

// GetFeatureTypes lists the feature types of a datastore.
func (c *Client) GetFeatureTypes(ctx context.Context, workspace, datastore string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, featureTypesPath(workspace, datastore)+".json", nil, nil)
}

// GetFeatureType returns one feature type.
func (c *Client) GetFeatureType(
	ctx context.Context, workspace, datastore, name string,
) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, featureTypePath(workspace, datastore, name)+".json", nil, nil)
}

// CreateFeatureType publishes a vector layer from a datastore table.
// The layer name must match the table name.
func (c *Client) CreateFeatureType(
	ctx context.Context, workspace, datastore, layer string, opts FeatureTypeOptions,
) (any, int, error) {
	epsg := opts.EPSG
	if epsg == 0 {
		epsg = 4326
	}
	title := opts.Title
	if title == "" {
		title = layer
	}

	ft := map[string]any{
		"name":       layer,
		"nativeName": layer,
		"title":      title,
		"srs":        fmt.Sprintf("EPSG:%d", epsg),
		"enabled":    true,
	}
	if opts.Abstract != "" {
		ft["abstract"] = opts.Abstract
	}
	if len(opts.Keywords) > 0 {
		ft["keywords"] = map[string]any{"string": opts.Keywords}
	}
	payload := map[string]any{"featureType": ft}

	return c.restJSON(ctx, http.MethodPost, featureTypesPath(workspace, datastore), nil, payload)
}

// DeleteFeatureType deletes a feature type and its layer.
func (c *Client) DeleteFeatureType(
	ctx context.Context, workspace, datastore, layer string,
) (any, int, error) {
	q := url.Values{"recurse": {"true"}}
	return c.restJSON(ctx, http.MethodDelete, featureTypePath(workspace, datastore, layer), q, nil)
}

func featureTypesPath(workspace, datastore string) string {
	return datastorePath(workspace, datastore) + "/featuretypes"
}

func featureTypePath(workspace, datastore, name string) string {
	return featureTypesPath(workspace, datastore) + "/" + url.PathEscape(name)
}
