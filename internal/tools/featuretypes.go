package tools

import (
	"context"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

func registerFeatureTypeTools(r *Registry) {
	r.Register(Descriptor{
		Name:    "get_feature_types",
		Summary: "List all feature types (vector layers) in a datastore.",
		Field:   "feature_types",
		Params:  []Param{workspaceParam(), datastoreParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetFeatureTypes(ctx, args.String("workspace_name"), args.String("datastore_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "get_feature_type",
		Summary: "Get details of a specific feature type.",
		Field:   "feature_type",
		Params: []Param{
			workspaceParam(),
			datastoreParam(),
			{Name: "feature_type_name", Type: TypeString, Description: "Name of the feature type", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetFeatureType(ctx,
				args.String("workspace_name"), args.String("datastore_name"),
				args.String("feature_type_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_feature_type",
		Summary: "Create a feature type (vector layer) from a database table.",
		Field:   "message",
		Params: []Param{
			layerParam("Name for the layer (must match the table name)"),
			workspaceParam(),
			datastoreParam(),
			{Name: "title", Type: TypeString, Description: "Human-readable title"},
			{Name: "abstract", Type: TypeString, Description: "Layer description"},
			epsgParam("EPSG code for the SRS"),
			{Name: "keywords", Type: TypeStringList, Description: "List of keywords"},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateFeatureType(ctx,
				args.String("workspace_name"), args.String("datastore_name"),
				args.String("layer_name"),
				geoserver.FeatureTypeOptions{
					Title:    args.String("title"),
					Abstract: args.String("abstract"),
					EPSG:     args.Int("epsg"),
					Keywords: args.StringList("keywords"),
				})
		}),
	})

	r.Register(Descriptor{
		Name:    "delete_feature_type",
		Summary: "Delete a feature type and its associated layer.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			datastoreParam(),
			layerParam("Name of the feature type to delete"),
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteFeatureType(ctx,
				args.String("workspace_name"), args.String("datastore_name"),
				args.String("layer_name"))
		}),
	})
}
