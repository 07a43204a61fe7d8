package analysis

import (
	_ "embed"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templateData []byte

// Template is a parameterized code skeleton offered as a completion
// candidate when its trigger matches the current line.
type Template struct {
	Label   string `yaml:"label"`
	Trigger string `yaml:"trigger"`
	Detail  string `yaml:"detail"`
	Snippet string `yaml:"snippet"`

	pattern *regexp.Regexp
}

type templateFile struct {
	Templates []Template `yaml:"templates"`
}

var templates []Template

func init() {
	var file templateFile
	if err := yaml.Unmarshal(templateData, &file); err != nil {
		panic(fmt.Sprintf("embedded templates: %s", err))
	}

	templates = file.Templates
	for i := range templates {
		templates[i].pattern = regexp.MustCompile(templates[i].Trigger)
	}
}

// TemplatesMatching returns every template whose trigger matches the given
// line. All matches are surfaced; there is no precedence between them.
func TemplatesMatching(line string) []Template {
	var matches []Template
	for _, template := range templates {
		if template.pattern.MatchString(line) {
			matches = append(matches, template)
		}
	}
	return matches
}
