// Package paths resolves the directories mkt uses outside a marketplace,
// following the XDG base directory layout through github.com/adrg/xdg:
//
//	paths.ConfigDir() // ~/.config/mkt
//	paths.LogDir()    // ~/.local/share/mkt/logs
//
// Paths from the command line may start with "~"; pass them through
// [ExpandHome] first.
package paths
