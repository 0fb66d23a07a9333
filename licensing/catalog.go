package licensing

import (
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is the ordered set of license patterns along with the file
// extensions considered readable source text. It is immutable after
// construction and safe for concurrent use.
type Catalog struct {
	patterns   []Pattern
	extensions map[string]struct{}
}

type Pattern struct {
	Name       string
	Expression *regexp.Regexp
}

var defaultExtensions = []string{"css", "java", "js", "pom", "xml"}

// Order matters: the first matching pattern wins.
var defaultPatterns = []struct{ name, expression string }{
	{"CDDLv1.0", `CDDLv1\.0`},
	{"CDDLv1.1", `CDDLv1\.1`},
	{"CDDL", `(CDDL Header Notice)|(Common Development and Distribution License)`},
	{"GPLv2", `GNU General Public License.*version 2|<license>\s*<name>GNU General Public License, Version 2</name>`},
	{"GPLv3", `GNU General Public License.*version 3|<license>\s*<name>GNU General Public License, Version 3</name>`},
	{"BSD", `BSD(-style)? (license|License)|<license>\s*<name>BSD</name>`},
	{"APACHEv2", `<license>\s*<name>Apache License, Version 2\.0</name>`},
	{"MIT", `MIT (\(or new BSD\) )?(license|License)|<license>\s*<name>MIT</name>|all copies or substantial portions of the Software`},
	{"ORACLE-JAVADOC", `<license>\s*<name>Oracle License for Javadoc Updater Tool</name>`},
}

func DefaultCatalog() *Catalog {
	catalog := &Catalog{extensions: extensionSet(defaultExtensions)}
	for _, item := range defaultPatterns {
		catalog.patterns = append(catalog.patterns, Pattern{Name: item.name, Expression: regexp.MustCompile(item.expression)})
	}
	return catalog
}

func NewCatalog(patterns []Pattern, extensions []string) (*Catalog, error) {
	if len(patterns) == 0 {
		return nil, errNoPatterns
	}
	for _, pattern := range patterns {
		if pattern.Name == "" || pattern.Expression == nil {
			return nil, errIncompletePattern
		}
	}
	if len(extensions) == 0 {
		extensions = defaultExtensions
	}
	return &Catalog{
		patterns:   append([]Pattern(nil), patterns...),
		extensions: extensionSet(extensions),
	}, nil
}

type catalogDocument struct {
	SourceExtensions []string `yaml:"source_extensions"`
	Licenses         []struct {
		Name    string `yaml:"name"`
		Pattern string `yaml:"pattern"`
	} `yaml:"licenses"`
}

// LoadCatalog reads a YAML catalog document. Licenses are matched in the
// order they are listed.
func LoadCatalog(reader io.Reader) (*Catalog, error) {
	var document catalogDocument
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("decoding license catalog: %w", err)
	}

	var patterns []Pattern
	for _, license := range document.Licenses {
		if strings.TrimSpace(license.Name) == "" {
			return nil, errIncompletePattern
		}
		expression, err := regexp.Compile(license.Pattern)
		if err != nil {
			return nil, fmt.Errorf("license %q: %w", license.Name, err)
		}
		patterns = append(patterns, Pattern{Name: license.Name, Expression: expression})
	}
	return NewCatalog(patterns, document.SourceExtensions)
}

// Match returns the name of the first pattern found in text.
func (this *Catalog) Match(text string) (string, bool) {
	for _, pattern := range this.patterns {
		if pattern.Expression.MatchString(text) {
			return pattern.Name, true
		}
	}
	return "", false
}

func (this *Catalog) IsSourceFile(name string) bool {
	_, found := this.extensions[extension(name)]
	return found
}

func (this *Catalog) Names() (names []string) {
	for _, pattern := range this.patterns {
		names = append(names, pattern.Name)
	}
	return names
}

func extensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, item := range extensions {
		set[strings.TrimPrefix(item, ".")] = struct{}{}
	}
	return set
}

// extension returns the text after the last dot of the final path element,
// without the dot. Archive entry names always use forward slashes.
func extension(name string) string {
	return strings.TrimPrefix(path.Ext(path.Base(strings.ReplaceAll(name, "\\", "/"))), ".")
}

var (
	errNoPatterns        = errors.New("license catalog has no patterns")
	errIncompletePattern = errors.New("license catalog entry requires a name and a pattern")
)
