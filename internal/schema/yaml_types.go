package schema

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// fieldAlias has the same fields as Field without its YAML methods.
type fieldAlias Field

// UnmarshalYAML accepts either a mapping or a C-style declaration string
// such as "unsigned long count" or "char name[16]".
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var decl string

		err := node.Decode(&decl)
		if err != nil {
			return err
		}

		parsed, err := ParseDeclaration(decl)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*f = parsed

		return nil

	case yaml.MappingNode:
		var alias fieldAlias

		err := node.Decode(&alias)
		if err != nil {
			return err
		}

		*f = Field(alias)

		return nil

	default:
		return fmt.Errorf("line %d: expected field mapping or declaration string, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML always writes the mapping form.
func (f Field) MarshalYAML() (any, error) {
	return fieldAlias(f), nil
}

// ParseDeclaration parses a C-style field declaration.
//
//	"uint32_t a"        -> {Name: a, Type: uint32_t}
//	"unsigned long n"   -> {Name: n, Type: unsigned long}
//	"char name[16]"     -> {Name: name, Type: char, Count: 16}
//	"struct Foo *next"  -> {Name: next, Type: pointer}
//	"struct Foo inner"  -> {Name: inner, Type: Foo}
func ParseDeclaration(decl string) (Field, error) {
	decl = strings.TrimSuffix(strings.TrimSpace(decl), ";")
	decl = strings.ReplaceAll(decl, "*", " * ")

	tokens := strings.Fields(decl)
	if len(tokens) < 2 {
		return Field{}, fmt.Errorf("declaration %q needs a type and a name", decl)
	}

	nameTok := tokens[len(tokens)-1]
	typeToks := tokens[:len(tokens)-1]

	var f Field

	if open := strings.IndexByte(nameTok, '['); open >= 0 {
		if !strings.HasSuffix(nameTok, "]") {
			return Field{}, fmt.Errorf("declaration %q: unterminated array length", decl)
		}

		n, err := strconv.Atoi(nameTok[open+1 : len(nameTok)-1])
		if err != nil {
			return Field{}, fmt.Errorf("declaration %q: invalid array length: %w", decl, err)
		}

		f.Count = &n
		nameTok = nameTok[:open]
	}

	if nameTok == "" {
		return Field{}, fmt.Errorf("declaration %q has no field name", decl)
	}

	f.Name = nameTok

	if typeToks[len(typeToks)-1] == "*" {
		f.Type = "pointer"
		return f, nil
	}

	if typeToks[0] == "struct" && len(typeToks) > 1 {
		typeToks = typeToks[1:]
	}

	f.Type = strings.Join(typeToks, " ")

	return f, nil
}
