package model

import "testing"

func testRoles() []Role {
	return []Role{
		{ID: "tutor", Description: "friendly tutor", Redirections: []string{"a", "b", "c"}},
		{ID: "waiter", Description: "polite waiter", Redirections: []string{"d", "e", "f", "g"}},
	}
}

func TestCatalogLookupFallsBackToDefault(t *testing.T) {
	c, err := NewRoleCatalog("tutor", testRoles())
	if err != nil {
		t.Fatalf("NewRoleCatalog: %v", err)
	}

	if got := c.Lookup("waiter").ID; got != "waiter" {
		t.Fatalf("Lookup(waiter) = %q", got)
	}
	if got := c.Lookup("astronaut").ID; got != "tutor" {
		t.Fatalf("Lookup(unknown) = %q, want default tutor", got)
	}
	if got := c.Lookup("").ID; got != "tutor" {
		t.Fatalf("Lookup(empty) = %q, want default tutor", got)
	}
}

func TestCatalogValidation(t *testing.T) {
	cases := []struct {
		name      string
		defaultID string
		roles     []Role
	}{
		{"no roles", "tutor", nil},
		{"missing default", "chef", testRoles()},
		{"too few redirections", "tutor", []Role{
			{ID: "tutor", Description: "d", Redirections: []string{"one", "two"}},
		}},
		{"empty description", "tutor", []Role{
			{ID: "tutor", Description: "", Redirections: []string{"a", "b", "c"}},
		}},
		{"duplicate id", "tutor", append(testRoles(), Role{
			ID: "tutor", Description: "again", Redirections: []string{"a", "b", "c"},
		})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRoleCatalog(tc.defaultID, tc.roles); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
