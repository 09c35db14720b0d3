package extension

import "strings"

// Path format placeholders.
const (
	PlaceholderServerPath = "[server_path]"
	PlaceholderUsername   = "[username]"
	PlaceholderExtName    = "[name_of_extension]"
	PlaceholderExtID      = "[extension_id]"
)

// TurboWarpPathFormat is where the TurboWarp extensions server expects
// user extensions to live.
const TurboWarpPathFormat = "[server_path]/extensions/[username]/[name_of_extension].js"

// PathValues holds the replacements for a path format.
type PathValues struct {
	ServerPath string
	Username   string
	Name       string
	ID         string
}

// ResolvePath replaces every path placeholder in format. Bracketed tokens it
// does not know are left as they are.
func ResolvePath(format string, v PathValues) string {
	r := strings.NewReplacer(
		PlaceholderServerPath, v.ServerPath,
		PlaceholderUsername, v.Username,
		PlaceholderExtName, v.Name,
		PlaceholderExtID, v.ID,
	)
	return r.Replace(format)
}

// ValidateName rejects names that would move the resolved path out of its
// directory when substituted for [name_of_extension] or used as a file name.
func ValidateName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return &InvalidNameError{Name: name}
	}
	return nil
}
