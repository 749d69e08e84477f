package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/internal/fileutils"
	"github.com/CadoCordova/Tempero-Fechamento/internal/models"

	"gopkg.in/yaml.v3"
)

func isJSON(path string) bool {
	return fileutils.Extension(path) == ".json"
}

// decodeRules reads a flat mapping keeping document order. JSON objects are
// valid YAML flow mappings, so both formats go through the same decoder.
func decodeRules(data []byte) ([]models.Rule, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping of pattern to category, got %s", kindName(root.Kind))
	}

	rules := make([]models.Rule, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: pattern and category must be plain strings", key.Line)
		}
		rules = append(rules, models.Rule{Pattern: key.Value, Category: value.Value})
	}
	return rules, nil
}

func encodeRules(rules []models.Rule, asJSON bool) ([]byte, error) {
	if asJSON {
		return encodeRulesJSON(rules)
	}

	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, rule := range rules {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rule.Pattern},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rule.Category},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeRulesJSON writes an indented JSON object. encoding/json sorts map
// keys, so the object is assembled pair by pair.
func encodeRulesJSON(rules []models.Rule) ([]byte, error) {
	if len(rules) == 0 {
		return []byte("{}\n"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, rule := range rules {
		key, err := jsonString(rule.Pattern)
		if err != nil {
			return nil, err
		}
		value, err := jsonString(rule.Category)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(value)
		if i < len(rules)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func decodeList(data []byte) ([]string, error) {
	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func encodeList(names []string, asJSON bool) ([]byte, error) {
	if names == nil {
		names = []string{}
	}
	if asJSON {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(names); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return yaml.Marshal(names)
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "an unknown node"
	}
}
