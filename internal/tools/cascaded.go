package tools

import (
	"context"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

func wmsStoreParam() Param {
	return Param{Name: "wms_store_name", Type: TypeString, Description: "Name of the WMS store", Required: true}
}

func registerWMSStoreTools(r *Registry) {
	r.Register(Descriptor{
		Name:    "get_wms_store",
		Summary: "Get details of a WMS store.",
		Field:   "wms_store",
		Params:  []Param{workspaceParam(), wmsStoreParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetWMSStore(ctx, args.String("workspace_name"), args.String("wms_store_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_wms_store",
		Summary: "Create a cascaded WMS store to proxy an external WMS service.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			wmsStoreParam(),
			{Name: "capabilities_url", Type: TypeString, Description: "URL to the external WMS GetCapabilities", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateWMSStore(ctx,
				args.String("workspace_name"), args.String("wms_store_name"),
				args.String("capabilities_url"))
		}),
	})

	r.Register(Descriptor{
		Name:    "delete_wms_store",
		Summary: "Delete a WMS store and all its layers.",
		Field:   "message",
		Params:  []Param{workspaceParam(), wmsStoreParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteWMSStore(ctx, args.String("workspace_name"), args.String("wms_store_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "get_wms_layer",
		Summary: "Get details of a WMS layer.",
		Field:   "wms_layer",
		Params: []Param{
			workspaceParam(),
			wmsStoreParam(),
			{Name: "wms_layer_name", Type: TypeString, Description: "Name of the WMS layer", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetWMSLayer(ctx,
				args.String("workspace_name"), args.String("wms_store_name"),
				args.String("wms_layer_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_wms_layer",
		Summary: "Publish a layer from a cascaded WMS store.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			wmsStoreParam(),
			{Name: "native_layer_name", Type: TypeString, Description: "Layer name in the remote WMS", Required: true},
			{Name: "published_layer_name", Type: TypeString, Description: "Published name (defaults to the native name)"},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateWMSLayer(ctx,
				args.String("workspace_name"), args.String("wms_store_name"),
				args.String("native_layer_name"), args.String("published_layer_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "delete_wms_layer",
		Summary: "Delete a WMS layer.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			wmsStoreParam(),
			{Name: "wms_layer_name", Type: TypeString, Description: "Name of the WMS layer to delete", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteWMSLayer(ctx,
				args.String("workspace_name"), args.String("wms_store_name"),
				args.String("wms_layer_name"))
		}),
	})
}

func wmtsStoreParam() Param {
	return Param{Name: "wmts_store_name", Type: TypeString, Description: "Name of the WMTS store", Required: true}
}

func registerWMTSStoreTools(r *Registry) {
	r.Register(Descriptor{
		Name:    "create_wmts_store",
		Summary: "Create a cascaded WMTS store to proxy an external WMTS service.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			wmtsStoreParam(),
			{Name: "capabilities_url", Type: TypeString, Description: "URL to the external WMTS GetCapabilities", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateWMTSStore(ctx,
				args.String("workspace_name"), args.String("wmts_store_name"),
				args.String("capabilities_url"))
		}),
	})

	r.Register(Descriptor{
		Name:    "delete_wmts_store",
		Summary: "Delete a WMTS store and all its layers.",
		Field:   "message",
		Params:  []Param{workspaceParam(), wmtsStoreParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteWMTSStore(ctx, args.String("workspace_name"), args.String("wmts_store_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_wmts_layer",
		Summary: "Publish a layer from a cascaded WMTS store.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			wmtsStoreParam(),
			{Name: "native_layer_name", Type: TypeString, Description: "Layer name in the remote WMTS", Required: true},
			{Name: "published_layer_name", Type: TypeString, Description: "Published name (defaults to the native name)"},
			epsgParam("EPSG code for the layer"),
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateWMTSLayer(ctx,
				args.String("workspace_name"), args.String("wmts_store_name"),
				args.String("native_layer_name"), args.String("published_layer_name"),
				args.Int("epsg"))
		}),
	})
}
