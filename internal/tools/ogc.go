package tools

import (
	"context"
	"strconv"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

func typeNameParam(required bool) Param {
	return Param{Name: "type_name", Type: TypeString, Description: "Feature type (layer) name", Required: required}
}

func registerOGCTools(r *Registry) {
	r.Register(Descriptor{
		Name:    "get_wms_layers",
		Summary: "Get WMS capabilities and list all layers for a workspace.",
		Field:   "layers",
		Params: []Param{
			workspaceParam(),
			{Name: "accept_languages", Type: TypeString, Description: "Language preference (e.g. 'en', 'fr')"},
		},
		Handler: bare(func(ctx context.Context, gs *geoserver.Client, args Args) (any, error) {
			return gs.GetWMSLayers(ctx, args.String("workspace_name"), args.String("accept_languages"))
		}),
	})

	r.Register(Descriptor{
		Name:    "get_wfs_layers",
		Summary: "Get WFS capabilities and list all feature types for a workspace.",
		Field:   "layers",
		Params:  []Param{workspaceParam()},
		Handler: bare(func(ctx context.Context, gs *geoserver.Client, args Args) (any, error) {
			return gs.GetWFSLayers(ctx, args.String("workspace_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "get_feature",
		Summary: "WFS GetFeature request to retrieve features from a layer.",
		Field:   "features",
		Params: []Param{
			workspaceParam(),
			typeNameParam(true),
			{Name: "feature_id", Type: TypeInt, Description: "Specific feature ID"},
			{Name: "max_features", Type: TypeInt, Description: "Maximum number of features to return"},
		},
		Handler: bare(func(ctx context.Context, gs *geoserver.Client, args Args) (any, error) {
			var featureID string
			if args.Has("feature_id") {
				featureID = strconv.Itoa(args.Int("feature_id"))
			}
			return gs.GetFeature(ctx,
				args.String("workspace_name"), args.String("type_name"),
				featureID, args.Int("max_features"))
		}),
	})

	r.Register(Descriptor{
		Name:    "describe_feature_type",
		Summary: "WFS DescribeFeatureType request to get schema information.",
		Field:   "schema",
		Params: []Param{
			optionalWorkspaceParam(),
			typeNameParam(false),
		},
		Handler: bare(func(ctx context.Context, gs *geoserver.Client, args Args) (any, error) {
			return gs.DescribeFeatureType(ctx,
				args.String("workspace_name"), args.String("type_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "get_property_value",
		Summary: "WFS GetPropertyValue request to get values of a specific property.",
		Field:   "values",
		Params: []Param{
			workspaceParam(),
			typeNameParam(true),
			{Name: "property_name", Type: TypeString, Description: "Property to retrieve values for", Required: true},
		},
		Handler: bare(func(ctx context.Context, gs *geoserver.Client, args Args) (any, error) {
			return gs.GetPropertyValue(ctx,
				args.String("workspace_name"), args.String("type_name"),
				args.String("property_name"))
		}),
	})
}
