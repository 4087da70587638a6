package tools

import (
	"context"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

func registerGwcTools(r *Registry) {
	r.Register(Descriptor{
		Name:    "get_gwc_layer",
		Summary: "Get GeoWebCache configuration for a layer.",
		Field:   "gwc_layer",
		Params:  []Param{workspaceParam(), layerParam("Name of the layer")},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetGwcLayer(ctx, args.String("workspace_name"), args.String("layer_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "publish_gwc_layer",
		Summary: "Enable tile caching for a layer in GeoWebCache.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			layerParam("Name of the layer"),
			epsgParam("EPSG code for the gridset"),
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.PublishGwcLayer(ctx,
				args.String("workspace_name"), args.String("layer_name"), args.Int("epsg"))
		}),
	})

	r.Register(Descriptor{
		Name:    "delete_gwc_layer",
		Summary: "Remove tile caching for a layer from GeoWebCache.",
		Field:   "message",
		Params:  []Param{workspaceParam(), layerParam("Name of the layer")},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteGwcLayer(ctx, args.String("workspace_name"), args.String("layer_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_gridset",
		Summary: "Create a gridset for GeoWebCache. Supported EPSG codes: 2056, 21781, 3857.",
		Field:   "message",
		Params: []Param{
			{Name: "epsg", Type: TypeInt, Description: "EPSG code for the gridset", Required: true,
				Enum: []any{2056, 21781, 3857}},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateGridset(ctx, args.Int("epsg"))
		}),
	})
}
