package tools

import (
	"context"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

func registerACLTools(r *Registry) {
	r.Register(Descriptor{
		Name:    "get_acl_rules",
		Summary: "Get all GeoServer ACL data rules.",
		Field:   "rules",
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetACLRules(ctx)
		}),
	})

	r.Register(Descriptor{
		Name:    "create_acl_rule",
		Summary: "Create a GeoServer ACL data rule.",
		Field:   "rule",
		Params: []Param{
			{Name: "priority", Type: TypeInt, Description: "Rule priority (lower wins)", Default: 0},
			{Name: "access", Type: TypeString, Description: "ALLOW or DENY", Default: "DENY",
				Enum: []any{"ALLOW", "DENY"}},
			{Name: "role", Type: TypeString, Description: "Role name"},
			{Name: "user", Type: TypeString, Description: "Username"},
			{Name: "service", Type: TypeString, Description: "Service (WMS, WFS, ...)"},
			{Name: "request", Type: TypeString, Description: "Request type"},
			optionalWorkspaceParam(),
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateACLRule(ctx, geoserver.ACLRuleOptions{
				Priority:  args.Int("priority"),
				Access:    args.String("access"),
				Role:      args.String("role"),
				User:      args.String("user"),
				Service:   args.String("service"),
				Request:   args.String("request"),
				Workspace: args.String("workspace_name"),
			})
		}),
	})

	r.Register(Descriptor{
		Name:    "create_acl_admin_rule",
		Summary: "Create a GeoServer ACL admin rule.",
		Field:   "rule",
		Params: []Param{
			{Name: "priority", Type: TypeInt, Description: "Rule priority", Default: 0},
			{Name: "access", Type: TypeString, Description: "Access level", Default: "ADMIN"},
			{Name: "role", Type: TypeString, Description: "Role name"},
			{Name: "user", Type: TypeString, Description: "Username"},
			optionalWorkspaceParam(),
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateACLAdminRule(ctx, geoserver.ACLAdminRuleOptions{
				Priority:  args.Int("priority"),
				Access:    args.String("access"),
				Role:      args.String("role"),
				User:      args.String("user"),
				Workspace: args.String("workspace_name"),
			})
		}),
	})

	r.Register(Descriptor{
		Name:    "delete_acl_admin_rule",
		Summary: "Delete an ACL admin rule by ID.",
		Field:   "message",
		Params: []Param{
			{Name: "rule_id", Type: TypeInt, Description: "ID of the rule to delete", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteACLAdminRule(ctx, args.Int("rule_id"))
		}),
	})

	r.Register(Descriptor{
		Name:    "delete_all_acl_rules",
		Summary: "Delete all ACL data rules. WARNING: this removes all access control rules.",
		Field:   "message",
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteAllACLRules(ctx)
		}),
	})

	r.Register(Descriptor{
		Name:    "delete_all_acl_admin_rules",
		Summary: "Delete all ACL admin rules. WARNING: this removes all admin access control rules.",
		Field:   "message",
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteAllACLAdminRules(ctx)
		}),
	})
}
