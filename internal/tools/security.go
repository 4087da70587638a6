package tools

import (
	"context"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

func usernameParam(desc string) Param {
	return Param{Name: "username", Type: TypeString, Description: desc, Required: true}
}

func roleParam(desc string) Param {
	return Param{Name: "role_name", Type: TypeString, Description: desc, Required: true}
}

func registerSecurityTools(r *Registry) {
	r.Register(Descriptor{
		Name:    "create_user",
		Summary: "Create a GeoServer user.",
		Field:   "message",
		Params: []Param{
			usernameParam("Username for the new user"),
			{Name: "password", Type: TypeString, Description: "Password for the new user", Required: true},
			{Name: "enabled", Type: TypeBool, Description: "Enable the user", Default: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateUser(ctx,
				args.String("username"), args.String("password"), args.Bool("enabled"))
		}),
	})

	r.Register(Descriptor{
		Name:    "update_user",
		Summary: "Update a GeoServer user's password or enabled state.",
		Field:   "message",
		Params: []Param{
			usernameParam("Username to update"),
			{Name: "password", Type: TypeString, Description: "New password"},
			{Name: "enabled", Type: TypeBool, Description: "Enable or disable the user"},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			var password *string
			if args.Has("password") {
				p := args.String("password")
				password = &p
			}
			var enabled *bool
			if args.Has("enabled") {
				e := args.Bool("enabled")
				enabled = &e
			}
			return gs.UpdateUser(ctx, args.String("username"), password, enabled)
		}),
	})

	r.Register(Descriptor{
		Name:    "delete_user",
		Summary: "Delete a GeoServer user.",
		Field:   "message",
		Params:  []Param{usernameParam("Username to delete")},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteUser(ctx, args.String("username"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_role",
		Summary: "Create a GeoServer role.",
		Field:   "message",
		Params:  []Param{roleParam("Name for the new role")},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateRole(ctx, args.String("role_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "delete_role",
		Summary: "Delete a GeoServer role.",
		Field:   "message",
		Params:  []Param{roleParam("Name of the role to delete")},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteRole(ctx, args.String("role_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "get_user_roles",
		Summary: "Get all roles assigned to a user.",
		Field:   "roles",
		Params:  []Param{usernameParam("Username to get roles for")},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetUserRoles(ctx, args.String("username"))
		}),
	})

	r.Register(Descriptor{
		Name:    "assign_role_to_user",
		Summary: "Assign a role to a user.",
		Field:   "message",
		Params:  []Param{usernameParam("Username"), roleParam("Role to assign")},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.AssignRole(ctx, args.String("username"), args.String("role_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "remove_role_from_user",
		Summary: "Remove a role from a user.",
		Field:   "message",
		Params:  []Param{usernameParam("Username"), roleParam("Role to remove")},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.RemoveRole(ctx, args.String("username"), args.String("role_name"))
		}),
	})
}
