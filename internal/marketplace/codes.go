package marketplace

// Code identifies the kind of a validation finding. Codes are stable and
// appear in JSON and YAML reports.
type Code string

// Fatal codes abort a run before any field-level check.
const (
	CodeMarketplaceDirMissing   Code = "marketplace_dir_missing"
	CodeMarketplaceNotDirectory Code = "marketplace_not_directory"
	CodeManifestNotFound        Code = "manifest_not_found"
	CodeManifestUnreadable      Code = "manifest_unreadable"
	CodeManifestInvalidSyntax   Code = "manifest_invalid_syntax"
)

// Manifest-level codes.
const (
	CodeMissingTopLevelField Code = "missing_top_level_field"
	CodeOwnerNotObject       Code = "owner_not_object"
	CodeMetadataNotObject    Code = "metadata_not_object"
	CodePluginsNotArray      Code = "plugins_not_array"
	CodePluginNotObject      Code = "plugin_not_object"
	CodeNoPlugins            Code = "no_plugins"
	CodePlaceholderValue     Code = "placeholder_value"
	CodeInvalidEmail         Code = "invalid_email"
	CodeInvalidVersion       Code = "invalid_version"
	CodeRecommendedField     Code = "recommended_field"
	CodeFieldNotString       Code = "field_not_string"
)

// Plugin and skill codes.
const (
	CodeMissingField          Code = "missing_field"
	CodeDuplicateName         Code = "duplicate_name"
	CodeInvalidNameFormat     Code = "invalid_name_format"
	CodeEmptyDescription      Code = "empty_description"
	CodeDescriptionTooShort   Code = "description_too_short"
	CodeDescriptionTooLong    Code = "description_too_long"
	CodeEmptySource           Code = "empty_source"
	CodeSkillsNotArray        Code = "skills_not_array"
	CodeNoSkillsDefined       Code = "no_skills_defined"
	CodeSkillPathNotString    Code = "skill_path_not_string"
	CodeSkillPathMissing      Code = "skill_path_missing"
	CodeSkillPathNotDirectory Code = "skill_path_not_directory"
	CodeSkillMdMissing        Code = "skill_md_missing"
	CodeSkillMdUnreadable     Code = "skill_md_unreadable"
	CodeMissingFrontmatter    Code = "missing_frontmatter"
	CodeMalformedFrontmatter  Code = "malformed_frontmatter"
)

// Fatal reports whether a finding with this code stops a run.
func (c Code) Fatal() bool {
	switch c {
	case CodeMarketplaceDirMissing, CodeMarketplaceNotDirectory,
		CodeManifestNotFound, CodeManifestUnreadable, CodeManifestInvalidSyntax:
		return true
	}
	return false
}
