package licensing

import (
	"bufio"
	"io"
	"strings"
)

const (
	jarManifestPath        = "META-INF/MANIFEST.MF"
	bundleLicenseAttribute = "Bundle-License"
)

// manifestAttributes maps attribute names, as first spelled in the manifest,
// to values. Names compare case-insensitively.
type manifestAttributes map[string]string

func (this manifestAttributes) Get(name string) string {
	return this[this.key(name)]
}

func (this manifestAttributes) key(name string) string {
	for existing := range this {
		if strings.EqualFold(existing, name) {
			return existing
		}
	}
	return name
}

// parseMainAttributes reads the main section of a jar manifest: "Name: value"
// lines up to the first blank line, where a line starting with a single
// space continues the previous value. A repeated name replaces the earlier
// value regardless of case.
func parseMainAttributes(reader io.Reader) (manifestAttributes, error) {
	attributes := make(manifestAttributes)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)

	var name string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}
		if strings.HasPrefix(line, " ") {
			if name != "" {
				attributes[name] += line[1:]
			}
			continue
		}
		separator := strings.Index(line, ":")
		if separator < 1 {
			name = ""
			continue
		}
		name = attributes.key(line[:separator])
		attributes[name] = strings.TrimPrefix(line[separator+1:], " ")
	}
	return attributes, scanner.Err()
}
