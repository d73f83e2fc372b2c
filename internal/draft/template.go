package draft

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/platform"
	"github.com/thoreinstein/shotgun/pkg/frontmatter"
)

// Template renders an empty Markdown draft for the selected platforms.
// The header lists every merged field annotated with its effective
// constraints; text is left to the body.
func Template(reg *platform.Registry, selected []platform.Key) ([]byte, error) {
	if reg == nil {
		reg = platform.Default()
	}

	header := &yaml.Node{Kind: yaml.MappingNode}

	platforms := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, key := range selected {
		platforms.Content = append(platforms.Content, scalarNode(string(key), "!!str"))
	}
	header.Content = append(header.Content, scalarNode(PlatformsKey, "!!str"), platforms)

	for _, f := range form.Merge(reg, selected) {
		if f.Name == "text" {
			continue
		}

		value := emptyValue(f.Kind)
		value.LineComment = "# " + constraints(f)
		header.Content = append(header.Content, scalarNode(f.Name, "!!str"), value)
	}

	return frontmatter.Format(header, "")
}

func scalarNode(value, tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func emptyValue(kind platform.FieldKind) *yaml.Node {
	switch kind {
	case platform.KindBoolean:
		return scalarNode("false", "!!bool")
	case platform.KindFile:
		return &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "", Style: yaml.DoubleQuotedStyle}
	}
}

// constraints describes a merged field for the template comment.
func constraints(f form.MergedField) string {
	var parts []string
	if f.Required {
		parts = append(parts, "required")
	}
	if f.HasMaxLength() {
		parts = append(parts, fmt.Sprintf("max %d chars", f.MaxLength))
	}
	if f.MaxFiles > 0 {
		parts = append(parts, fmt.Sprintf("max %d files", f.MaxFiles))
	}
	keys := make([]string, len(f.Platforms))
	for i, k := range f.Platforms {
		keys[i] = string(k)
	}
	parts = append(parts, strings.Join(keys, ", "))
	return strings.Join(parts, "; ")
}
