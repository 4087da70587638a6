package geoserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GridsetEPSGCodes are the EPSG codes for which a gridset definition is
// available.
var GridsetEPSGCodes = []int{2056, 3857, 21781}

// gridsetExtents maps supported EPSG codes to their gridset extent.
var gridsetExtents = map[int][4]float64{
	2056:  {2420000, 1030000, 2900000, 1350000},
	3857:  {-20037508.34, -20037508.34, 20037508.34, 20037508.34},
	21781: {420000, 30000, 900000, 350000},
}

// GetGwcLayer returns the GeoWebCache configuration of a layer.
func (c *Client) GetGwcLayer(ctx context.Context, workspace, layer string) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, gwcLayerPath(workspace, layer)+".json", nil, nil)
}

// PublishGwcLayer enables tile caching for a layer.
func (c *Client) PublishGwcLayer(ctx context.Context, workspace, layer string, epsg int) (any, int, error) {
	payload := map[string]any{
		"GeoServerLayer": map[string]any{
			"name":    workspace + ":" + layer,
			"enabled": true,
			"gridSubsets": map[string]any{
				"gridSubset": []map[string]any{
					{"gridSetName": fmt.Sprintf("EPSG:%d", epsg)},
				},
			},
			"mimeFormats": map[string]any{"string": []string{"image/png"}},
		},
	}
	return c.restJSON(ctx, http.MethodPut, gwcLayerPath(workspace, layer), nil, payload)
}

// DeleteGwcLayer removes tile caching for a layer.
func (c *Client) DeleteGwcLayer(ctx context.Context, workspace, layer string) (any, int, error) {
	return c.restJSON(ctx, http.MethodDelete, gwcLayerPath(workspace, layer), nil, nil)
}

// CreateGridset creates a tile gridset for one of the supported EPSG
// codes (see GridsetEPSGCodes).
func (c *Client) CreateGridset(ctx context.Context, epsg int) (any, int, error) {
	extent, ok := gridsetExtents[epsg]
	if !ok {
		return nil, 0, fmt.Errorf("no gridset definition for EPSG:%d (supported: %v)", epsg, GridsetEPSGCodes)
	}

	name := fmt.Sprintf("EPSG:%d", epsg)
	payload := map[string]any{
		"gridSet": map[string]any{
			"name": name,
			"srs":  map[string]any{"number": epsg},
			"extent": map[string]any{
				"coords": map[string]any{
					"double": []float64{extent[0], extent[1], extent[2], extent[3]},
				},
			},
			"alignTopLeft":     false,
			"metersPerUnit":    1,
			"tileHeight":       256,
			"tileWidth":        256,
			"yCoordinateFirst": false,
		},
	}
	path := "/gwc/rest/gridsets/" + url.PathEscape(name)
	return c.restJSON(ctx, http.MethodPut, path, nil, payload)
}

func gwcLayerPath(workspace, layer string) string {
	return "/gwc/rest/layers/" + url.PathEscape(workspace+":"+layer)
}
