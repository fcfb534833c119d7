// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package tsparse

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/signalcall/internal/tsast"
	"fillmore-labs.com/signalcall/internal/typestr"
)

// converter builds a [tsast.Tree] from a tree-sitter syntax tree.
type converter struct {
	b   *tsast.Builder
	src []byte
}

// skipped are subtrees without expression content.
var skipped = map[string]bool{
	"comment":                true,
	"type_annotation":        true,
	"type_arguments":         true,
	"type_parameters":        true,
	"type_identifier":        true,
	"type_alias_declaration": true,
	"import_statement":       true,
	"asserts_annotation":     true,
	"type_predicate":         true,
	"accessibility_modifier": true,
	"override_modifier":      true,
}

// transparent nodes are replaced by their named children.
var transparent = map[string]bool{
	"parenthesized_expression": true,
	"export_statement":         true,
	"ambient_declaration":      true,
	"expression_statement":     true,
}

var literalTypes = map[string]string{
	"number":          "number",
	"string":          "string",
	"template_string": "string",
	"true":            "boolean",
	"false":           "boolean",
	"null":            "null",
	"undefined":       "undefined",
	"regex":           "RegExp",
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

func (c *converter) add(n *sitter.Node, parent tsast.NodeID, edge tsast.Edge, node tsast.Node) tsast.NodeID {
	node.Start, node.End = int(n.StartByte()), int(n.EndByte())

	return c.b.Add(parent, edge, node)
}

// comments records all comments in source order.
func (c *converter) comments(n *sitter.Node) {
	if n.Type() == "comment" {
		c.b.AddComment(tsast.Comment{Text: c.text(n), Start: int(n.StartByte()), End: int(n.EndByte())})

		return
	}

	for i := range int(n.NamedChildCount()) {
		c.comments(n.NamedChild(i))
	}
}

// children converts all named children of n with the given role.
func (c *converter) children(n *sitter.Node, parent tsast.NodeID, edge tsast.Edge) {
	if n == nil {
		return
	}

	for i := range int(n.NamedChildCount()) {
		c.node(n.NamedChild(i), parent, edge)
	}
}

// field converts the child in the given tree-sitter field, if present.
func (c *converter) field(n *sitter.Node, name string, parent tsast.NodeID, edge tsast.Edge) {
	if child := n.ChildByFieldName(name); child != nil {
		c.node(child, parent, edge)
	}
}

// node converts n and its subtree.
func (c *converter) node(n *sitter.Node, parent tsast.NodeID, edge tsast.Edge) {
	if n == nil {
		return
	}

	typ := n.Type()

	switch {
	case skipped[typ], strings.HasSuffix(typ, "_type"):
		return

	case transparent[typ]:
		c.children(n, parent, edge)

		return
	}

	if lt, ok := literalTypes[typ]; ok {
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Literal, Type: lt})

		if typ == "template_string" {
			for i := range int(n.NamedChildCount()) {
				if sub := n.NamedChild(i); sub.Type() == "template_substitution" {
					c.children(sub, id, tsast.NoEdge)
				}
			}
		}

		return
	}

	switch typ {
	case "program":
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Program})
		c.children(n, id, tsast.EdgeStatement)

	case "statement_block":
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Block})
		c.children(n, id, tsast.EdgeStatement)

	case "identifier", "property_identifier", "private_property_identifier",
		"shorthand_property_identifier", "shorthand_property_identifier_pattern":
		c.add(n, parent, edge, tsast.Node{Kind: tsast.Identifier, Name: c.text(n)})

	case "this":
		c.add(n, parent, edge, tsast.Node{Kind: tsast.This})

	case "member_expression":
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Member})
		c.field(n, "object", id, tsast.EdgeObject)
		c.field(n, "property", id, tsast.EdgeProperty)

	case "subscript_expression":
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Member, Flags: tsast.Computed})
		c.field(n, "object", id, tsast.EdgeObject)
		c.field(n, "index", id, tsast.EdgeProperty)

	case "call_expression":
		c.call(n, parent, edge, tsast.Call, "function")

	case "new_expression":
		c.call(n, parent, edge, tsast.New, "constructor")

	case "assignment_expression", "augmented_assignment_expression":
		op := "="
		if o := n.ChildByFieldName("operator"); o != nil {
			op = c.text(o)
		}

		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Assignment, Name: op})
		c.field(n, "left", id, tsast.EdgeLeft)
		c.field(n, "right", id, tsast.EdgeRight)

	case "public_field_definition", "field_definition", "property_signature":
		c.fieldDefinition(n, parent, edge)

	case "object":
		id := c.add(n, parent, edge, tsast.Node{})
		c.object(n, id)

	case "object_pattern":
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Pattern, Name: "{}"})
		c.object(n, id)

	case "array_pattern":
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Pattern, Name: "[]"})
		c.children(n, id, tsast.NoEdge)

	case "rest_pattern":
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Pattern, Name: "..."})
		c.children(n, id, tsast.NoEdge)

	case "assignment_pattern", "object_assignment_pattern":
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Pattern, Name: "="})
		c.field(n, "left", id, tsast.EdgeLeft)
		c.field(n, "right", id, tsast.EdgeRight)

	case "pair", "pair_pattern":
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Property})
		c.field(n, "key", id, tsast.EdgeKey)
		c.field(n, "value", id, tsast.EdgeValue)

	case "arrow_function":
		c.function(n, parent, edge, tsast.Node{Kind: tsast.ArrowFunction})

	case "function_declaration", "function_expression", "function",
		"generator_function_declaration", "generator_function":
		c.function(n, parent, edge, tsast.Node{Kind: tsast.Function})

	case "function_signature":
		c.function(n, parent, edge, tsast.Node{Kind: tsast.Function, Flags: tsast.Ambient})

	case "method_definition":
		c.function(n, parent, edge, tsast.Node{Kind: tsast.Method, Flags: c.modifiers(n)})

	case "method_signature", "abstract_method_signature":
		c.function(n, parent, edge, tsast.Node{Kind: tsast.Method, Flags: tsast.Ambient | c.modifiers(n)})

	case "call_signature":
		c.function(n, parent, edge, tsast.Node{Kind: tsast.Method, Flags: tsast.Ambient | tsast.CallSignature})

	case "class_declaration", "class", "abstract_class_declaration":
		c.class(n, parent, edge)

	case "interface_declaration":
		c.iface(n, parent, edge)

	case "lexical_declaration", "variable_declaration":
		keyword := "var"
		if n.ChildCount() > 0 {
			keyword = c.text(n.Child(0))
		}

		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Declaration, Name: keyword})
		c.children(n, id, tsast.EdgeDeclarator)

	case "variable_declarator":
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.VariableDeclarator, Type: c.typeOf(n.ChildByFieldName("type"))})
		c.field(n, "name", id, tsast.EdgeName)
		c.field(n, "value", id, tsast.EdgeInit)

	case "required_parameter", "optional_parameter":
		c.parameter(n, parent, edge)

	case "for_statement":
		c.forLoop(n, parent, edge)

	case "for_in_statement":
		c.forInLoop(n, parent, edge)

	case "catch_clause":
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Catch})
		c.field(n, "parameter", id, tsast.EdgeName)
		c.field(n, "body", id, tsast.EdgeBody)

	case "return_statement":
		id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Return})
		c.children(n, id, tsast.NoEdge)

	default:
		id := c.add(n, parent, edge, tsast.Node{})
		c.children(n, id, tsast.NoEdge)
	}
}

// call converts call and new expressions.
func (c *converter) call(n *sitter.Node, parent tsast.NodeID, edge tsast.Edge, kind tsast.Kind, callee string) {
	id := c.add(n, parent, edge, tsast.Node{Kind: kind, TypeArgs: c.typeList(n.ChildByFieldName("type_arguments"))})
	c.field(n, callee, id, tsast.EdgeCallee)

	args := n.ChildByFieldName("arguments")
	switch {
	case args == nil:

	case args.Type() == "arguments":
		c.children(args, id, tsast.EdgeArgument)

	default: // tagged template
		c.node(args, id, tsast.NoEdge)
	}
}

// object converts the members of an object literal or pattern.
func (c *converter) object(n *sitter.Node, id tsast.NodeID) {
	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if typ := child.Type(); typ != "shorthand_property_identifier" && typ != "shorthand_property_identifier_pattern" {
			c.node(child, id, tsast.NoEdge)

			continue
		}

		prop := c.add(child, id, tsast.NoEdge, tsast.Node{Kind: tsast.Property, Flags: tsast.Shorthand})
		c.node(child, prop, tsast.EdgeValue)
	}
}

// forLoop converts a for statement, keeping a declaration in the head as [tsast.EdgeInit].
func (c *converter) forLoop(n *sitter.Node, parent tsast.NodeID, edge tsast.Edge) {
	id := c.add(n, parent, edge, tsast.Node{Kind: tsast.Loop, Name: "for"})
	body := n.ChildByFieldName("body")

	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)

		switch {
		case body != nil && child.StartByte() == body.StartByte() && child.Type() == body.Type():
			c.node(child, id, tsast.EdgeBody)

		case child.Type() == "lexical_declaration", child.Type() == "variable_declaration":
			c.node(child, id, tsast.EdgeInit)

		default:
			c.node(child, id, tsast.NoEdge)
		}
	}
}

// forInLoop converts for-in and for-of statements. The left side binds only when declared
// with const, let or var, otherwise it is an assignment target.
func (c *converter) forInLoop(n *sitter.Node, parent tsast.NodeID, edge tsast.Edge) {
	node := tsast.Node{Kind: tsast.Loop, Name: "in"}
	binding := tsast.NoEdge

	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child.IsNamed() {
			continue
		}

		switch child.Type() {
		case "of":
			node.Name = "of"

		case "const", "let", "var":
			binding = tsast.EdgeName
		}
	}

	id := c.add(n, parent, edge, node)
	c.field(n, "left", id, binding)
	c.field(n, "right", id, tsast.EdgeInit)
	c.field(n, "body", id, tsast.EdgeBody)
}

// fieldDefinition converts class fields and interface property signatures.
func (c *converter) fieldDefinition(n *sitter.Node, parent tsast.NodeID, edge tsast.Edge) {
	flags := c.modifiers(n)
	if n.Type() == "property_signature" {
		flags |= tsast.Ambient
	}

	id := c.add(n, parent, edge, tsast.Node{
		Kind:  tsast.PropertyDefinition,
		Type:  c.typeOf(n.ChildByFieldName("type")),
		Flags: flags,
	})

	if name := n.ChildByFieldName("name"); name != nil {
		c.node(name, id, tsast.EdgeKey)
	} else {
		c.field(n, "property", id, tsast.EdgeKey)
	}

	c.field(n, "value", id, tsast.EdgeValue)

	for i := range int(n.NamedChildCount()) {
		if child := n.NamedChild(i); child.Type() == "decorator" {
			c.node(child, id, tsast.NoEdge)
		}
	}
}

// function converts function-like nodes.
func (c *converter) function(n *sitter.Node, parent tsast.NodeID, edge tsast.Edge, node tsast.Node) {
	node.Type = c.typeOf(n.ChildByFieldName("return_type"))
	node.TypeParams = c.typeParams(n.ChildByFieldName("type_parameters"))

	id := c.add(n, parent, edge, node)

	if name := n.ChildByFieldName("name"); name != nil {
		nameEdge := tsast.EdgeName
		if node.Kind == tsast.Method {
			nameEdge = tsast.EdgeKey
		}

		c.node(name, id, nameEdge)
	}

	if p := n.ChildByFieldName("parameter"); p != nil { // x => ...
		param := c.add(p, id, tsast.EdgeParam, tsast.Node{Kind: tsast.Parameter})
		c.node(p, param, tsast.EdgeName)
	}

	c.params(n.ChildByFieldName("parameters"), id)
	c.field(n, "body", id, tsast.EdgeBody)
}

// params converts formal parameters.
func (c *converter) params(n *sitter.Node, id tsast.NodeID) {
	if n == nil {
		return
	}

	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		switch child.Type() {
		case "required_parameter", "optional_parameter":
			c.parameter(child, id, tsast.EdgeParam)

		case "comment":

		default: // plain JavaScript parameters
			param := c.add(child, id, tsast.EdgeParam, tsast.Node{Kind: tsast.Parameter})
			c.node(child, param, tsast.EdgeName)
		}
	}
}

// parameter converts a single typed parameter.
func (c *converter) parameter(n *sitter.Node, parent tsast.NodeID, edge tsast.Edge) {
	node := tsast.Node{Kind: tsast.Parameter, Type: c.typeOf(n.ChildByFieldName("type"))}

	if n.Type() == "optional_parameter" {
		node.Flags |= tsast.Optional
	}

	for i := range int(n.ChildCount()) {
		switch n.Child(i).Type() {
		case "accessibility_modifier", "readonly", "override_modifier":
			node.Flags |= tsast.ParamProperty
		}
	}

	pattern := n.ChildByFieldName("pattern")
	if pattern != nil && pattern.Type() == "rest_pattern" {
		node.Flags |= tsast.Rest
		if pattern.NamedChildCount() > 0 {
			pattern = pattern.NamedChild(0)
		}
	}

	id := c.add(n, parent, edge, node)

	if pattern != nil {
		c.node(pattern, id, tsast.EdgeName)
	}

	c.field(n, "value", id, tsast.EdgeInit)
}

// class converts class declarations and expressions.
func (c *converter) class(n *sitter.Node, parent tsast.NodeID, edge tsast.Edge) {
	node := tsast.Node{
		Kind:       tsast.Class,
		TypeParams: c.typeParams(n.ChildByFieldName("type_parameters")),
	}

	if name := n.ChildByFieldName("name"); name != nil {
		node.Name = c.text(name)
	}

	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if child.Type() != "class_heritage" {
			continue
		}

		for j := range int(child.NamedChildCount()) {
			if clause := child.NamedChild(j); clause.Type() == "extends_clause" {
				node.Extends = append(node.Extends, typestr.Normalize(strings.TrimPrefix(c.text(clause), "extends")))
			}
		}
	}

	id := c.add(n, parent, edge, node)

	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}

	for i := range int(body.NamedChildCount()) {
		c.node(body.NamedChild(i), id, tsast.EdgeMember)
	}
}

// iface converts interface declarations.
func (c *converter) iface(n *sitter.Node, parent tsast.NodeID, edge tsast.Edge) {
	node := tsast.Node{
		Kind:       tsast.Interface,
		TypeParams: c.typeParams(n.ChildByFieldName("type_parameters")),
	}

	if name := n.ChildByFieldName("name"); name != nil {
		node.Name = c.text(name)
	}

	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if child.Type() != "extends_type_clause" {
			continue
		}

		for j := range int(child.NamedChildCount()) {
			node.Extends = append(node.Extends, typestr.Normalize(c.text(child.NamedChild(j))))
		}
	}

	id := c.add(n, parent, edge, node)

	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}

	for i := range int(body.NamedChildCount()) {
		c.node(body.NamedChild(i), id, tsast.EdgeMember)
	}
}

// modifiers returns the flags for member modifiers.
func (c *converter) modifiers(n *sitter.Node) tsast.Flags {
	var flags tsast.Flags

	for i := range int(n.ChildCount()) {
		switch n.Child(i).Type() {
		case "static":
			flags |= tsast.Static

		case "?":
			flags |= tsast.Optional

		case "declare", "abstract":
			flags |= tsast.Ambient
		}
	}

	return flags
}

// typeOf returns the normalized text of a type or type annotation.
func (c *converter) typeOf(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	if n.Type() == "type_annotation" || n.Type() == "asserts_annotation" {
		if n.NamedChildCount() == 0 {
			return ""
		}

		n = n.NamedChild(0)
	}

	return typestr.Normalize(c.text(n))
}

// typeParams returns the names of declared type parameters.
func (c *converter) typeParams(n *sitter.Node) []string {
	if n == nil {
		return nil
	}

	var params []string

	for i := range int(n.NamedChildCount()) {
		tp := n.NamedChild(i)
		if tp.Type() != "type_parameter" {
			continue
		}

		if name := tp.ChildByFieldName("name"); name != nil {
			params = append(params, c.text(name))
		}
	}

	return params
}

// typeList returns the normalized texts of type arguments.
func (c *converter) typeList(n *sitter.Node) []string {
	if n == nil {
		return nil
	}

	var types []string

	for i := range int(n.NamedChildCount()) {
		if arg := n.NamedChild(i); arg.Type() != "comment" {
			types = append(types, typestr.Normalize(c.text(arg)))
		}
	}

	return types
}
