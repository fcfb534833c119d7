// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/signalcall/internal/tsast"
)

const (
	// signalcall is the name of the linter.
	signalcall = "signalcall"

	// eslintRule is the name of the corresponding ESLint rule.
	eslintRule = "enforce-angular-signal-call"
)

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	tree      *tsast.Tree
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and a parsed *[tsast.Tree].
// The file is added to the file set.
func NewCurrentFile(fset *token.FileSet, tree *tsast.Tree) CurrentFile {
	if tree == nil {
		return CurrentFile{}
	}

	handle := fset.AddFile(tree.Filename, -1, len(tree.Src))
	handle.SetLinesForContent(tree.Src)

	generated := isGenerated(tree)

	return CurrentFile{tree, handle, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Tree returns the syntax tree of the file.
func (c CurrentFile) Tree() *tsast.Tree {
	return c.tree
}

// Pos converts a byte offset into a [token.Pos].
func (c CurrentFile) Pos(offset int) token.Pos {
	return c.handle.Pos(offset)
}

// Range returns the positions of a node.
func (c CurrentFile) Range(id tsast.NodeID) (pos, end token.Pos) {
	n := c.tree.Node(id)

	return c.Pos(n.Start), c.Pos(n.End)
}

func (c CurrentFile) line(offset int) int {
	return c.handle.Line(c.handle.Pos(offset))
}

// Line returns the 1-based line of a byte offset.
func (c CurrentFile) Line(offset int) int {
	return c.line(offset)
}

// NoLintFile checks if the first comment of the file, preceding all code, carries a nolint directive.
func (c CurrentFile) NoLintFile() bool {
	if c.tree == nil || len(c.tree.Comments) == 0 {
		return false
	}

	comment := c.tree.Comments[0]
	if comment.Start > firstCode(c.tree) {
		return false
	}

	return CommentHasNoLint(comment.Text) || eslintDisables(comment.Text, "eslint-disable")
}

// NoLintComment checks if the line of the node carries a //nolint:signalcall or
// eslint-disable-line comment, or the preceding line an eslint-disable-next-line comment.
func (c CurrentFile) NoLintComment(id tsast.NodeID) bool {
	if c.tree == nil {
		return false
	}

	n := c.tree.Node(id)
	line := c.line(n.Start)

	// find the first comment starting after the node
	i, _ := slices.BinarySearchFunc(c.tree.Comments, n.Start,
		func(c tsast.Comment, offset int) int { return c.Start - offset })

	for _, comment := range c.tree.Comments[i:] {
		if c.line(comment.Start) != line {
			break // not on this line
		}

		if CommentHasNoLint(comment.Text) || eslintDisables(comment.Text, "eslint-disable-line") {
			return true
		}
	}

	for j := i - 1; j >= 0; j-- {
		comment := c.tree.Comments[j]

		switch l := c.line(comment.End); {
		case l == line:
			if eslintDisables(comment.Text, "eslint-disable-line") {
				return true
			}

			continue

		case l == line-1:
			return eslintDisables(comment.Text, "eslint-disable-next-line")
		}

		break
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:signalcall` directive.
func CommentHasNoLint(text string) bool {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == signalcall || l == "all" {
			return true
		}
	}

	return false
}

var eslintPattern = regexp.MustCompile(`^(?://|/\*)\s*(eslint-disable(?:-next-line|-line)?)(?:\s+([^*]*))?`)

// eslintDisables checks if a comment is the given eslint-disable directive covering this rule.
// A directive without rule list disables all rules.
func eslintDisables(text, directive string) bool {
	matches := eslintPattern.FindStringSubmatch(text)
	if matches == nil || matches[1] != directive {
		return false
	}

	rules, _, _ := strings.Cut(matches[2], "--") // description
	if strings.TrimSpace(rules) == "" {
		return true
	}

	for rule := range strings.SplitSeq(rules, ",") {
		rule = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rule), "*/"))
		if rule == eslintRule || strings.HasSuffix(rule, "/"+eslintRule) {
			return true
		}
	}

	return false
}

var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// isGenerated reports whether the file has a generated code comment before the first code.
func isGenerated(tree *tsast.Tree) bool {
	first := firstCode(tree)

	for _, comment := range tree.Comments {
		if comment.Start > first {
			break
		}

		for line := range strings.Lines(comment.Text) {
			if generatedPattern.MatchString(strings.TrimRight(line, "\r\n")) {
				return true
			}
		}
	}

	return false
}

// firstCode returns the offset of the first syntax node below the root.
func firstCode(tree *tsast.Tree) int {
	root := tree.Root()
	for id := range tree.Preorder() {
		if id != root {
			return tree.Node(id).Start
		}
	}

	return len(tree.Src)
}
