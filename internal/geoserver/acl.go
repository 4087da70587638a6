package geoserver

import (
	"context"
	"net/http"
	"strconv"
)

// ACLRuleOptions describes a data access rule for the GeoServer ACL
// extension. Empty strings mean "any".
type ACLRuleOptions struct {
	Priority  int
	Access    string
	Role      string
	User      string
	Service   string
	Request   string
	Workspace string
}

// ACLAdminRuleOptions describes an admin access rule.
type ACLAdminRuleOptions struct {
	Priority  int
	Access    string
	Role      string
	User      string
	Workspace string
}

// GetACLRules lists all data access rules.
func (c *Client) GetACLRules(ctx context.Context) (any, int, error) {
	return c.restJSON(ctx, http.MethodGet, "/acl/api/rules", nil, nil)
}

// CreateACLRule creates a data access rule.
func (c *Client) CreateACLRule(ctx context.Context, opts ACLRuleOptions) (any, int, error) {
	rule := map[string]any{
		"priority": opts.Priority,
		"access":   opts.Access,
	}
	setIfPresent(rule, "role", opts.Role)
	setIfPresent(rule, "user", opts.User)
	setIfPresent(rule, "service", opts.Service)
	setIfPresent(rule, "request", opts.Request)
	setIfPresent(rule, "workspace", opts.Workspace)

	return c.restJSON(ctx, http.MethodPost, "/acl/api/rules", nil, rule)
}

// CreateACLAdminRule creates an admin access rule.
func (c *Client) CreateACLAdminRule(ctx context.Context, opts ACLAdminRuleOptions) (any, int, error) {
	rule := map[string]any{
		"priority": opts.Priority,
		"access":   opts.Access,
	}
	setIfPresent(rule, "role", opts.Role)
	setIfPresent(rule, "user", opts.User)
	setIfPresent(rule, "workspace", opts.Workspace)

	return c.restJSON(ctx, http.MethodPost, "/acl/api/adminrules", nil, rule)
}

// DeleteACLAdminRule deletes an admin rule by ID.
func (c *Client) DeleteACLAdminRule(ctx context.Context, ruleID int) (any, int, error) {
	path := "/acl/api/adminrules/id/" + strconv.Itoa(ruleID)
	return c.restJSON(ctx, http.MethodDelete, path, nil, nil)
}

// DeleteAllACLRules removes every data access rule.
func (c *Client) DeleteAllACLRules(ctx context.Context) (any, int, error) {
	return c.restJSON(ctx, http.MethodDelete, "/acl/api/rules", nil, nil)
}

// DeleteAllACLAdminRules removes every admin access rule.
func (c *Client) DeleteAllACLAdminRules(ctx context.Context) (any, int, error) {
	return c.restJSON(ctx, http.MethodDelete, "/acl/api/adminrules", nil, nil)
}

func setIfPresent(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
