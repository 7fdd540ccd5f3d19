package pyprobe

import (
	"strings"

	"github.com/lerenn/geoaudit/pkg/align"
)

// ParseShowVersions scrapes library versions out of a human-readable
// show_versions() report. The contract is deliberately narrow: a line whose
// stripped form begins with a library name yields that library's value by
// splitting on the first colon; later matching lines overwrite earlier ones.
// Lines mentioning "lib" (any case) are excluded when matching GEOS, to keep
// "GEOS lib" paths from shadowing the version line. This parser tracks an
// upstream output format that can change between releases and is the most
// fragile boundary of the auditor.
func ParseShowVersions(output string) map[align.Library]string {
	versions := make(map[align.Library]string)

	for _, line := range strings.Split(output, "\n") {
		stripped := strings.TrimSpace(line)

		for _, library := range align.Libraries {
			if !strings.HasPrefix(stripped, string(library)) {
				continue
			}
			if library == align.GEOS && strings.Contains(strings.ToLower(line), "lib") {
				continue
			}
			_, value, found := strings.Cut(stripped, ":")
			if !found {
				continue
			}
			if value = strings.TrimSpace(value); value != "" {
				versions[library] = value
			}
			break
		}
	}

	return versions
}
