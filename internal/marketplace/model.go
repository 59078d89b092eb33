package marketplace

import "path/filepath"

// Layout constants for a marketplace directory.
const (
	// ManifestDir is the directory, relative to the root, holding the manifest.
	ManifestDir = ".claude-plugin"
	// ManifestFile is the manifest file name.
	ManifestFile = "marketplace.json"
	// SkillFile is the file every skill directory must contain.
	SkillFile = "SKILL.md"
)

// Placeholder values written by init. Validation warns while they remain.
const (
	PlaceholderOwnerName        = "Your Name"
	PlaceholderOwnerEmail       = "your.email@example.com"
	PlaceholderDescription      = "Brief description of your marketplace"
	PlaceholderRepositoryPrefix = "https://github.com/your-org/"
	DefaultVersion              = "0.1.0"
	DefaultLicense              = "MIT"
	DefaultPluginSource         = "./"
	MinDescriptionLength        = 20
	MaxDescriptionLength        = 200
)

// Manifest is the root record of marketplace.json.
type Manifest struct {
	Name     string   `json:"name"`
	Owner    Owner    `json:"owner"`
	Metadata Metadata `json:"metadata"`
	Plugins  []Plugin `json:"plugins"`
}

// Owner identifies who maintains the marketplace.
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Metadata describes the marketplace as a whole.
type Metadata struct {
	Description string   `json:"description"`
	Version     string   `json:"version"`
	License     string   `json:"license"`
	Repository  string   `json:"repository"`
	Keywords    []string `json:"keywords"`
}

// Plugin is a named bundle of skills.
type Plugin struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	Strict      bool     `json:"strict"`
	Skills      []string `json:"skills"`
}

// ManifestPath returns the manifest location for a marketplace root.
func ManifestPath(root string) string {
	return filepath.Join(root, ManifestDir, ManifestFile)
}

// NewManifest returns a manifest skeleton with placeholder owner and
// metadata values and no plugins.
func NewManifest(name string) *Manifest {
	return &Manifest{
		Name: name,
		Owner: Owner{
			Name:  PlaceholderOwnerName,
			Email: PlaceholderOwnerEmail,
		},
		Metadata: Metadata{
			Description: PlaceholderDescription,
			Version:     DefaultVersion,
			License:     DefaultLicense,
			Repository:  PlaceholderRepositoryPrefix + name,
			Keywords:    []string{},
		},
		Plugins: []Plugin{},
	}
}
