// Package roles loads the declarative role table into the immutable
// RoleCatalog. Role content lives in roles.yaml so scenario changes never
// touch orchestration code.
package roles

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/model"
)

//go:embed roles.yaml
var CatalogFS embed.FS

type roleSpec struct {
	Description  string   `yaml:"description"`
	Redirections []string `yaml:"redirections"`
}

type catalogFile struct {
	Default string              `yaml:"default"`
	Roles   map[string]roleSpec `yaml:"roles"`
}

// Load parses a role table from fsys and builds the catalog. Validation
// (default present, 3+ redirection phrases per role) happens in
// model.NewRoleCatalog.
func Load(fsys fs.FS, name string) (*model.RoleCatalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read role table %s: %w", name, err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse role table %s: %w", name, err)
	}
	rs := make([]model.Role, 0, len(cf.Roles))
	for id, spec := range cf.Roles {
		rs = append(rs, model.Role{
			ID:           id,
			Description:  spec.Description,
			Redirections: spec.Redirections,
		})
	}
	return model.NewRoleCatalog(cf.Default, rs)
}

// Default loads the embedded role table.
func Default() (*model.RoleCatalog, error) {
	return Load(CatalogFS, "roles.yaml")
}
