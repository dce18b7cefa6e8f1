package release

import _ "embed"

// defaultPRTemplate is the static pull-request description used when no
// template_path is configured.
//
//go:embed assets/pr-description.md
var defaultPRTemplate string
