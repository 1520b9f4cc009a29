package taxonomy

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/myjobmatch/skillgap/models"
)

// Parse reads a taxonomy document and validates it.
//
// The document is YAML (JSON is accepted since it parses as YAML):
//
//	roles:
//	  Web Developer:
//	    HTML: [html, html5]
//	    JavaScript: [javascript, js]
//	resources:
//	  JavaScript: https://www.freecodecamp.org/learn
//
// Roles and skills keep the order they are declared in. A skill may list its
// variants as a sequence or give a single string.
func Parse(data []byte) (*Taxonomy, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ValidationError{Message: "document is empty"}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &ValidationError{Message: "document is empty"}
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, &ValidationError{Line: root.Line, Message: "top level must be a mapping with roles and resources"}
	}

	var (
		roles     []models.Role
		resources map[string]string
		haveRoles bool
	)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], resolve(root.Content[i+1])
		switch key.Value {
		case "roles":
			parsed, err := parseRoles(value)
			if err != nil {
				return nil, err
			}
			roles = parsed
			haveRoles = true
		case "resources":
			parsed, err := parseResources(value)
			if err != nil {
				return nil, err
			}
			resources = parsed
		default:
			return nil, &ValidationError{Path: key.Value, Line: key.Line, Message: "unknown top-level key"}
		}
	}

	if !haveRoles {
		return nil, &ValidationError{Path: "roles", Message: "roles section is required"}
	}

	t, err := New(roles, resources)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func parseRoles(node *yaml.Node) ([]models.Role, error) {
	if isNull(node) {
		return nil, &ValidationError{Path: "roles", Line: node.Line, Message: "at least one role is required"}
	}
	if node.Kind != yaml.MappingNode {
		return nil, &ValidationError{Path: "roles", Line: node.Line, Message: "must be a mapping of role name to skills"}
	}

	roles := make([]models.Role, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolve(node.Content[i+1])
		name := strings.TrimSpace(key.Value)
		path := "roles." + name

		if isNull(value) {
			return nil, &ValidationError{Path: path, Line: key.Line, Message: "role declares no skills"}
		}
		if value.Kind != yaml.MappingNode {
			return nil, &ValidationError{Path: path, Line: value.Line, Message: "must be a mapping of skill name to variants"}
		}

		role := models.Role{Name: name, Skills: make([]models.Skill, 0, len(value.Content)/2)}
		for j := 0; j+1 < len(value.Content); j += 2 {
			skillKey := value.Content[j]
			variants, err := parseVariants(path+"."+strings.TrimSpace(skillKey.Value), resolve(value.Content[j+1]))
			if err != nil {
				return nil, err
			}
			role.Skills = append(role.Skills, models.Skill{Name: skillKey.Value, Variants: variants})
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func parseVariants(path string, node *yaml.Node) ([]string, error) {
	switch {
	case isNull(node):
		return nil, &ValidationError{Path: path, Line: node.Line, Message: "skill has no variants"}
	case node.Kind == yaml.ScalarNode:
		return []string{node.Value}, nil
	case node.Kind == yaml.SequenceNode:
		variants := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return nil, &ValidationError{Path: path, Line: item.Line, Message: "variants must be strings"}
			}
			variants = append(variants, item.Value)
		}
		return variants, nil
	default:
		return nil, &ValidationError{Path: path, Line: node.Line, Message: "variants must be a string or a list of strings"}
	}
}

func parseResources(node *yaml.Node) (map[string]string, error) {
	if isNull(node) {
		return map[string]string{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, &ValidationError{Path: "resources", Line: node.Line, Message: "must be a mapping of skill name to URL"}
	}

	resources := make(map[string]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolve(node.Content[i+1])
		if value.Kind != yaml.ScalarNode || isNull(value) {
			return nil, &ValidationError{Path: "resources." + key.Value, Line: value.Line, Message: "URL must be a string"}
		}
		if _, dup := resources[strings.TrimSpace(key.Value)]; dup {
			return nil, &ValidationError{Path: "resources." + key.Value, Line: key.Line, Message: "duplicate resource"}
		}
		resources[strings.TrimSpace(key.Value)] = value.Value
	}
	return resources, nil
}

// resolve follows alias nodes to their anchors
func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
