package tools

import (
	"context"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

// DefaultRegistry builds the full tool catalog.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	registerConnectionTools(r)
	registerWorkspaceTools(r)
	registerDatastoreTools(r)
	registerWMSStoreTools(r)
	registerWMTSStoreTools(r)
	registerFeatureTypeTools(r)
	registerCoverageTools(r)
	registerLayerGroupTools(r)
	registerStyleTools(r)
	registerGwcTools(r)
	registerOGCTools(r)
	registerSecurityTools(r)
	registerACLTools(r)
	return r
}

// forward adapts a REST-family call: content forwarded together with
// the backend status code.
func forward(f func(context.Context, *geoserver.Client, Args) (any, int, error)) Handler {
	return func(ctx context.Context, gs *geoserver.Client, args Args) (Result, error) {
		content, status, err := f(ctx, gs, args)
		if err != nil {
			return Result{}, err
		}
		return WithStatus(content, status), nil
	}
}

// bare adapts an OGC-family call: content with no status channel.
func bare(f func(context.Context, *geoserver.Client, Args) (any, error)) Handler {
	return func(ctx context.Context, gs *geoserver.Client, args Args) (Result, error) {
		content, err := f(ctx, gs, args)
		if err != nil {
			return Result{}, err
		}
		return Bare(content), nil
	}
}

// Shared parameter declarations. Most tools address entities inside a
// workspace, so these recur across every family.

func workspaceParam() Param {
	return Param{Name: "workspace_name", Type: TypeString, Description: "Name of the workspace", Required: true}
}

func optionalWorkspaceParam() Param {
	return Param{Name: "workspace_name", Type: TypeString, Description: "Optional workspace name"}
}

func datastoreParam() Param {
	return Param{Name: "datastore_name", Type: TypeString, Description: "Name of the datastore", Required: true}
}

func layerParam(desc string) Param {
	return Param{Name: "layer_name", Type: TypeString, Description: desc, Required: true}
}

func epsgParam(desc string) Param {
	return Param{Name: "epsg", Type: TypeInt, Description: desc, Default: 4326}
}

func descriptionParam() Param {
	return Param{Name: "description", Type: TypeString, Description: "Optional description"}
}
