package tools

import (
	"context"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

func registerLayerGroupTools(r *Registry) {
	r.Register(Descriptor{
		Name:    "get_layer_groups",
		Summary: "List all layer groups in a workspace.",
		Field:   "layer_groups",
		Params:  []Param{workspaceParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetLayerGroups(ctx, args.String("workspace_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "get_layer_group",
		Summary: "Get details of a specific layer group.",
		Field:   "layer_group",
		Params: []Param{
			workspaceParam(),
			{Name: "layer_group_name", Type: TypeString, Description: "Name of the layer group", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetLayerGroup(ctx, args.String("workspace_name"), args.String("layer_group_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_layer_group",
		Summary: "Create a layer group combining multiple layers.",
		Field:   "message",
		Params: []Param{
			{Name: "group_name", Type: TypeString, Description: "Name for the layer group", Required: true},
			workspaceParam(),
			{Name: "layers", Type: TypeStringList, Description: "Layer names to include", Required: true},
			{Name: "styles", Type: TypeStringList, Description: "Style names (one per layer)"},
			{Name: "title", Type: TypeString, Description: "Human-readable title"},
			{Name: "abstract", Type: TypeString, Description: "Layer group description"},
			epsgParam("EPSG code for the group bounds"),
			{Name: "mode", Type: TypeString, Description: "Group mode", Default: "SINGLE",
				Enum: []any{"SINGLE", "NAMED", "CONTAINER", "EO"}},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateLayerGroup(ctx,
				args.String("workspace_name"), args.String("group_name"),
				geoserver.LayerGroupOptions{
					Layers:   args.StringList("layers"),
					Styles:   args.StringList("styles"),
					Title:    args.String("title"),
					Abstract: args.String("abstract"),
					EPSG:     args.Int("epsg"),
					Mode:     args.String("mode"),
				})
		}),
	})

	r.Register(Descriptor{
		Name:    "delete_layer_group",
		Summary: "Delete a layer group.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			{Name: "layer_group_name", Type: TypeString, Description: "Name of the layer group to delete", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteLayerGroup(ctx, args.String("workspace_name"), args.String("layer_group_name"))
		}),
	})
}
