package geoserver

import (
	"context"
	"net/http"
	"net/url"
)

// CreateUser creates a GeoServer user in the default user/group service.
func (c *Client) CreateUser(ctx context.Context, username, password string, enabled bool) (any, int, error) {
	payload := map[string]any{
		"user": map[string]any{
			"userName": username,
			"password": password,
			"enabled":  enabled,
		},
	}
	return c.restJSON(ctx, http.MethodPost, "/rest/security/usergroup/users", nil, payload)
}

// UpdateUser updates a user's password and/or enabled flag. Nil fields
// are left unchanged.
func (c *Client) UpdateUser(ctx context.Context, username string, password *string, enabled *bool) (any, int, error) {
	user := map[string]any{}
	if password != nil {
		user["password"] = *password
	}
	if enabled != nil {
		user["enabled"] = *enabled
	}
	payload := map[string]any{"user": user}
	path := "/rest/security/usergroup/user/" + url.PathEscape(username)
	return c.restJSON(ctx, http.MethodPost, path, nil, payload)
}

// DeleteUser deletes a GeoServer user.
func (c *Client) DeleteUser(ctx context.Context, username string) (any, int, error) {
	path := "/rest/security/usergroup/user/" + url.PathEscape(username)
	return c.restJSON(ctx, http.MethodDelete, path, nil, nil)
}

// CreateRole creates a role in the default role service.
func (c *Client) CreateRole(ctx context.Context, role string) (any, int, error) {
	path := "/rest/security/roles/role/" + url.PathEscape(role)
	return c.restJSON(ctx, http.MethodPost, path, nil, nil)
}

// DeleteRole deletes a role.
func (c *Client) DeleteRole(ctx context.Context, role string) (any, int, error) {
	path := "/rest/security/roles/role/" + url.PathEscape(role)
	return c.restJSON(ctx, http.MethodDelete, path, nil, nil)
}

// GetUserRoles lists the roles assigned to a user.
func (c *Client) GetUserRoles(ctx context.Context, username string) (any, int, error) {
	path := "/rest/security/roles/user/" + url.PathEscape(username) + ".json"
	return c.restJSON(ctx, http.MethodGet, path, nil, nil)
}

// AssignRole assigns a role to a user.
func (c *Client) AssignRole(ctx context.Context, username, role string) (any, int, error) {
	path := "/rest/security/roles/role/" + url.PathEscape(role) + "/user/" + url.PathEscape(username)
	return c.restJSON(ctx, http.MethodPost, path, nil, nil)
}

// RemoveRole removes a role from a user.
func (c *Client) RemoveRole(ctx context.Context, username, role string) (any, int, error) {
	path := "/rest/security/roles/role/" + url.PathEscape(role) + "/user/" + url.PathEscape(username)
	return c.restJSON(ctx, http.MethodDelete, path, nil, nil)
}
