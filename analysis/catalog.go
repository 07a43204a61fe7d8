package analysis

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogData []byte

// LibrarySymbol is one documented entry of the PSL standard library.
type LibrarySymbol struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc"`
}

type catalogFile struct {
	Keywords []LibrarySymbol `yaml:"keywords"`
	Library  []LibrarySymbol `yaml:"library"`
}

var (
	keywordDocs    map[string]string
	keywordNames   []string
	librarySymbols []LibrarySymbol
)

func init() {
	var catalog catalogFile
	if err := yaml.Unmarshal(catalogData, &catalog); err != nil {
		panic(fmt.Sprintf("embedded catalog: %s", err))
	}

	keywordDocs = make(map[string]string, len(catalog.Keywords))
	keywordNames = make([]string, 0, len(catalog.Keywords))
	for _, entry := range catalog.Keywords {
		keywordDocs[strings.ToLower(entry.Name)] = entry.Doc
		keywordNames = append(keywordNames, entry.Name)
	}
	sort.Strings(keywordNames)

	librarySymbols = catalog.Library
}

// LookupKeyword returns the documentation for a reserved word. Matching is
// case-insensitive and exact.
func LookupKeyword(name string) (string, bool) {
	doc, ok := keywordDocs[strings.ToLower(name)]
	return doc, ok
}

// Keywords returns every reserved word, sorted.
func Keywords() []string {
	return keywordNames
}

// LookupLibrary returns the standard-library symbols whose qualified name
// contains the given substring, case-insensitively.
func LookupLibrary(substring string) []LibrarySymbol {
	needle := strings.ToLower(substring)

	var matches []LibrarySymbol
	for _, symbol := range librarySymbols {
		if strings.Contains(strings.ToLower(symbol.Name), needle) {
			matches = append(matches, symbol)
		}
	}
	return matches
}
