package model

import (
	"fmt"
	"sort"
)

// Role is one persona/scenario the tutor can adopt during a conversation.
type Role struct {
	ID           string
	Description  string
	Redirections []string // ordered phrases, in the target language
}

// RoleCatalog is the immutable, process-wide lookup of roles. Built once at
// startup; unknown identifiers resolve to the default role.
type RoleCatalog struct {
	roles     map[string]Role
	defaultID string
}

func NewRoleCatalog(defaultID string, roles []Role) (*RoleCatalog, error) {
	if len(roles) == 0 {
		return nil, fmt.Errorf("role catalog: no roles defined")
	}
	m := make(map[string]Role, len(roles))
	for _, r := range roles {
		if r.ID == "" {
			return nil, fmt.Errorf("role catalog: role with empty id")
		}
		if r.Description == "" {
			return nil, fmt.Errorf("role catalog: role %q has no description", r.ID)
		}
		if len(r.Redirections) < 3 {
			return nil, fmt.Errorf("role catalog: role %q needs at least 3 redirection phrases, has %d", r.ID, len(r.Redirections))
		}
		if _, dup := m[r.ID]; dup {
			return nil, fmt.Errorf("role catalog: duplicate role %q", r.ID)
		}
		m[r.ID] = r
	}
	if _, ok := m[defaultID]; !ok {
		return nil, fmt.Errorf("role catalog: default role %q not defined", defaultID)
	}
	return &RoleCatalog{roles: m, defaultID: defaultID}, nil
}

// Lookup resolves a role identifier, falling back to the default role when
// the identifier is unknown or empty.
func (c *RoleCatalog) Lookup(id string) Role {
	if r, ok := c.roles[id]; ok {
		return r
	}
	return c.roles[c.defaultID]
}

func (c *RoleCatalog) Has(id string) bool {
	_, ok := c.roles[id]
	return ok
}

func (c *RoleCatalog) DefaultID() string { return c.defaultID }

func (c *RoleCatalog) IDs() []string {
	ids := make([]string, 0, len(c.roles))
	for id := range c.roles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
