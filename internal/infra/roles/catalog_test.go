package roles

import (
	"testing"
	"testing/fstest"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if c.DefaultID() != "tutor" {
		t.Fatalf("default role = %q, want tutor", c.DefaultID())
	}

	for _, id := range []string{"tutor", "waiter", "doctor", "grocery"} {
		if !c.Has(id) {
			t.Errorf("embedded catalog is missing role %q", id)
		}
		role := c.Lookup(id)
		if role.Description == "" {
			t.Errorf("role %q has an empty description", id)
		}
		if len(role.Redirections) < 3 {
			t.Errorf("role %q has %d redirection phrases, want at least 3", id, len(role.Redirections))
		}
	}
}

func TestLoadRejectsBrokenTables(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"not yaml", "{{nope"},
		{"missing default role", "default: chef\nroles:\n  tutor:\n    description: d\n    redirections: [a, b, c]\n"},
		{"too few redirections", "default: tutor\nroles:\n  tutor:\n    description: d\n    redirections: [a]\n"},
		{"no roles", "default: tutor\nroles: {}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := fstest.MapFS{"roles.yaml": &fstest.MapFile{Data: []byte(tc.yaml)}}
			if _, err := Load(fsys, "roles.yaml"); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "roles.yaml"); err == nil {
		t.Fatal("expected an error for a missing role table")
	}
}
