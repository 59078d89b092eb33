package marketplace

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/mkt/internal/rules"
	"github.com/thoreinstein/mkt/internal/validator"
)

// requiredTopLevelFields are checked in this order.
var requiredTopLevelFields = []string{"name", "owner", "metadata", "plugins"}

// requiredPluginFields are checked in this order.
var requiredPluginFields = []string{"name", "description", "source", "skills"}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger used for progress messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// Checker validates a marketplace rooted at a directory. It only reads
// from the filesystem.
type Checker struct {
	root   string
	logger *slog.Logger
}

// NewChecker creates a Checker for the marketplace at root.
func NewChecker(root string, opts ...Option) *Checker {
	c := &Checker{
		root:   root,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Root returns the marketplace root being checked.
func (c *Checker) Root() string {
	return c.root
}

// Check runs every rule and returns the findings in discovery order:
// top-level fields, owner, metadata, then plugins and their skills.
func (c *Checker) Check() *validator.Result {
	res := &validator.Result{}
	c.logger.Debug("validating marketplace", "root", c.root)

	doc, code, msg := c.load()
	if code.Fatal() {
		addError(res, code, "", "%s", msg)
		return res
	}

	for _, field := range requiredTopLevelFields {
		if _, present := doc[field]; !present {
			addError(res, CodeMissingTopLevelField, field,
				"Missing required field in marketplace.json: '%s'", field)
		}
	}

	if v, present := doc["name"]; present {
		name, isString := v.(string)
		if !isString || !rules.IsValidName(name) {
			addError(res, CodeInvalidNameFormat, "name",
				"Marketplace name '%v' has invalid name format (must be kebab-case)", v)
		}
	}

	if owner, present := doc["owner"]; present {
		c.checkOwner(res, owner)
	}
	if metadata, present := doc["metadata"]; present {
		c.checkMetadata(res, metadata)
	}
	if plugins, present := doc["plugins"]; present {
		c.checkPlugins(res, plugins)
	}

	return res
}

// load reads and decodes the manifest. On failure it returns the fatal
// code and its message instead of a document.
func (c *Checker) load() (map[string]any, Code, string) {
	info, err := os.Stat(c.root)
	if err != nil {
		return nil, CodeMarketplaceDirMissing, "Marketplace directory does not exist: " + c.root
	}
	if !info.IsDir() {
		return nil, CodeMarketplaceNotDirectory, "Path is not a directory: " + c.root
	}

	path := ManifestPath(c.root)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, CodeManifestNotFound,
			fmt.Sprintf("marketplace.json not found at %s/%s", ManifestDir, ManifestFile)
	case err != nil:
		return nil, CodeManifestUnreadable,
			fmt.Sprintf("marketplace.json could not be read: %v", err)
	}
	c.logger.Debug("✓ marketplace.json exists", "path", path)

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, CodeManifestInvalidSyntax, fmt.Sprintf("marketplace.json is invalid JSON: %v", err)
	}
	doc, isObject := raw.(map[string]any)
	if !isObject {
		return nil, CodeManifestInvalidSyntax,
			fmt.Sprintf("marketplace.json must contain a JSON object, got %s", jsonKind(raw))
	}
	c.logger.Debug("✓ marketplace.json is valid JSON")

	return doc, "", ""
}

func (c *Checker) checkOwner(res *validator.Result, v any) {
	owner, ok := v.(map[string]any)
	if !ok {
		addError(res, CodeOwnerNotObject, "owner", "'owner' field must be an object")
		return
	}

	if name, present := owner["name"]; !present {
		addError(res, CodeMissingField, "owner.name", "Missing required field: owner.name")
	} else if s, ok := stringField(res, "owner.name", name); ok && (s == "" || s == PlaceholderOwnerName) {
		addWarning(res, CodePlaceholderValue, "owner.name", "owner.name should be updated with actual name")
	}

	if email, present := owner["email"]; !present {
		addError(res, CodeMissingField, "owner.email", "Missing required field: owner.email")
	} else if s, ok := stringField(res, "owner.email", email); ok {
		switch {
		case s == "" || s == PlaceholderOwnerEmail:
			addWarning(res, CodePlaceholderValue, "owner.email", "owner.email should be updated with actual email")
		case !rules.IsValidEmail(s):
			addError(res, CodeInvalidEmail, "owner.email", "Invalid email format: %s", s)
		}
	}

	c.logger.Debug("✓ owner information checked")
}

func (c *Checker) checkMetadata(res *validator.Result, v any) {
	metadata, ok := v.(map[string]any)
	if !ok {
		addError(res, CodeMetadataNotObject, "metadata", "'metadata' field must be an object")
		return
	}

	if desc, present := metadata["description"]; !present {
		addError(res, CodeMissingField, "metadata.description", "Missing required field: metadata.description")
	} else if s, ok := stringField(res, "metadata.description", desc); ok {
		n := utf8.RuneCountInString(s)
		switch {
		case s == "" || s == PlaceholderDescription:
			addWarning(res, CodePlaceholderValue, "metadata.description",
				"metadata.description should be updated with actual description")
		case n < MinDescriptionLength:
			addWarning(res, CodeDescriptionTooShort, "metadata.description",
				"metadata.description is too short (%d chars). Aim for 50-200 characters.", n)
		case n > MaxDescriptionLength:
			addWarning(res, CodeDescriptionTooLong, "metadata.description",
				"metadata.description is too long (%d chars). Aim for 50-200 characters.", n)
		}
	}

	if version, present := metadata["version"]; !present {
		addError(res, CodeMissingField, "metadata.version", "Missing required field: metadata.version")
	} else if s, isString := version.(string); !isString || !rules.IsValidSemver(s) {
		addError(res, CodeInvalidVersion, "metadata.version", "Invalid semantic version: %v", version)
	}

	if _, present := metadata["license"]; !present {
		addWarning(res, CodeRecommendedField, "metadata.license", "Consider adding metadata.license field")
	}

	if repo, present := metadata["repository"]; !present {
		addWarning(res, CodeRecommendedField, "metadata.repository", "Consider adding metadata.repository field")
	} else if s, isString := repo.(string); isString && strings.HasPrefix(s, PlaceholderRepositoryPrefix) {
		addWarning(res, CodePlaceholderValue, "metadata.repository",
			"metadata.repository should be updated with actual repository URL")
	}

	c.logger.Debug("✓ metadata checked")
}

func (c *Checker) checkPlugins(res *validator.Result, v any) {
	plugins, ok := v.([]any)
	if !ok {
		addError(res, CodePluginsNotArray, "plugins", "'plugins' field must be an array")
		return
	}
	if len(plugins) == 0 {
		addWarning(res, CodeNoPlugins, "plugins", "No plugins defined in marketplace.json")
		return
	}

	c.logger.Debug(fmt.Sprintf("✓ Found %d plugin(s)", len(plugins)))

	seen := make(map[string]struct{})
	for idx, entry := range plugins {
		plugin, isObject := entry.(map[string]any)
		if !isObject {
			addError(res, CodePluginNotObject, fmt.Sprintf("plugins[%d]", idx),
				"Plugin at index %d is not an object", idx)
			continue
		}
		c.CheckPlugin(res, plugin, idx, seen)
	}
}

// CheckPlugin validates one decoded plugin entry at position idx. seen
// holds the plugin names recorded so far in this run; this plugin's name
// is added to it whether or not it was a duplicate.
func (c *Checker) CheckPlugin(res *validator.Result, plugin map[string]any, idx int, seen map[string]struct{}) {
	prefix := fmt.Sprintf("plugins[%d]", idx)

	for _, field := range requiredPluginFields {
		if _, present := plugin[field]; !present {
			addError(res, CodeMissingField, prefix+"."+field,
				"Plugin at index %d missing required field: '%s'", idx, field)
		}
	}

	// Entries without a usable string name are labelled by position.
	rawName, hasName := plugin["name"]
	name, isString := rawName.(string)
	if !isString {
		name = fmt.Sprintf("plugin-%d", idx)
	}

	if _, dup := seen[name]; dup {
		addError(res, CodeDuplicateName, prefix+".name", "Duplicate plugin name: '%s'", name)
	}
	seen[name] = struct{}{}

	if hasName && (!isString || !rules.IsValidName(name)) {
		addError(res, CodeInvalidNameFormat, prefix+".name",
			"Plugin '%s' has invalid name format (must be kebab-case)", name)
	}

	desc := optionalString(plugin, "description")
	n := utf8.RuneCountInString(desc)
	switch {
	case desc == "":
		addError(res, CodeEmptyDescription, prefix+".description", "Plugin '%s' has empty description", name)
	case n < MinDescriptionLength:
		addWarning(res, CodeDescriptionTooShort, prefix+".description",
			"Plugin '%s' description is too short (%d chars)", name, n)
	case n > MaxDescriptionLength:
		addWarning(res, CodeDescriptionTooLong, prefix+".description",
			"Plugin '%s' description is too long (%d chars)", name, n)
	}

	if optionalString(plugin, "source") == "" {
		addError(res, CodeEmptySource, prefix+".source", "Plugin '%s' has empty source path", name)
	}

	rawSkills, present := plugin["skills"]
	if !present {
		rawSkills = []any{}
	}
	skills, isArray := rawSkills.([]any)
	switch {
	case !isArray:
		addError(res, CodeSkillsNotArray, prefix+".skills", "Plugin '%s' skills field must be an array", name)
	case len(skills) == 0:
		addError(res, CodeNoSkillsDefined, prefix+".skills", "Plugin '%s' has no skills defined", name)
	default:
		for i, s := range skills {
			field := fmt.Sprintf("%s.skills[%d]", prefix, i)
			skillPath, isString := s.(string)
			if !isString {
				addError(res, CodeSkillPathNotString, field, "Plugin '%s' has non-string skill path", name)
				continue
			}
			c.CheckSkill(res, field, name, skillPath)
		}
	}

	c.logger.Debug(fmt.Sprintf("  ✓ Plugin '%s' checked", name))
}

// CheckSkill validates that skillPath, relative to the marketplace root,
// is a directory holding a SKILL.md with usable frontmatter. field is the
// manifest location used in findings.
func (c *Checker) CheckSkill(res *validator.Result, field, pluginName, skillPath string) {
	dir := ResolveSkillPath(c.root, skillPath)

	switch status, _ := StatSkill(dir); status {
	case SkillMissing:
		addError(res, CodeSkillPathMissing, field,
			"Plugin '%s' skill path does not exist: %s", pluginName, skillPath)
		return
	case SkillNotDirectory:
		addError(res, CodeSkillPathNotDirectory, field,
			"Plugin '%s' skill path is not a directory: %s", pluginName, skillPath)
		return
	case SkillFileMissing:
		addError(res, CodeSkillMdMissing, field,
			"Plugin '%s' skill missing SKILL.md: %s", pluginName, skillPath)
		return
	}

	content, err := os.ReadFile(skillFilePath(dir))
	if err != nil {
		addError(res, CodeSkillMdUnreadable, field,
			"Plugin '%s' skill '%s' SKILL.md could not be read: %v", pluginName, skillPath, err)
		return
	}

	for _, p := range CheckFrontmatter(string(content)) {
		switch p.Code {
		case CodeMissingFrontmatter:
			addError(res, p.Code, field,
				"Plugin '%s' skill '%s' SKILL.md missing YAML frontmatter", pluginName, skillPath)
		case CodeMalformedFrontmatter:
			addError(res, p.Code, field,
				"Plugin '%s' skill '%s' SKILL.md has malformed YAML frontmatter", pluginName, skillPath)
		case CodeMissingField:
			addError(res, p.Code, field,
				"Plugin '%s' skill '%s' SKILL.md frontmatter missing '%s' field", pluginName, skillPath, p.Field)
		}
	}
}

func addError(res *validator.Result, code Code, field, format string, args ...any) {
	res.Errorf(string(code), field, format, args...)
}

func addWarning(res *validator.Result, code Code, field, format string, args ...any) {
	res.Warnf(string(code), field, format, args...)
}

// stringField returns v as a string. JSON null reads as "". Any other
// non-string value is recorded as an error and reported as not ok.
func stringField(res *validator.Result, field string, v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case nil:
		return "", true
	default:
		addError(res, CodeFieldNotString, field, "%s must be a string, got %s", field, jsonKind(v))
		return "", false
	}
}

// optionalString returns the string value of key, or "" when the key is
// absent, null, or not a string.
func optionalString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
