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

// Package tsparse converts TypeScript sources into [tsast.Tree]s using tree-sitter.
package tsparse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"fillmore-labs.com/signalcall/internal/tsast"
)

var (
	// ErrFileTooLarge is returned for sources exceeding the configured maximum size.
	ErrFileTooLarge = errors.New("file too large")

	// ErrInvalidContent is returned for sources that are not valid UTF-8.
	ErrInvalidContent = errors.New("invalid content")
)

// DefaultMaxFileSize is the default limit for a single source file.
const DefaultMaxFileSize = 10 << 20

// Option configures a [Parser].
type Option func(*Parser)

// WithMaxFileSize sets the maximum accepted source size in bytes. Non-positive values are ignored.
func WithMaxFileSize(size int) Option {
	return func(p *Parser) {
		if size > 0 {
			p.maxFileSize = size
		}
	}
}

// WithLogger sets the logger for parse warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Parser parses TypeScript and TSX sources. It is safe for concurrent use,
// every call creates its own tree-sitter parser.
type Parser struct {
	maxFileSize int
	logger      *slog.Logger
}

// New creates a [Parser].
func New(opts ...Option) *Parser {
	p := &Parser{
		maxFileSize: DefaultMaxFileSize,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses src into a [tsast.Tree]. Files ending in ".tsx" use the TSX grammar.
//
// Syntax errors are tolerated, the erroneous regions end up as [tsast.Other] nodes.
func (p *Parser) Parse(ctx context.Context, filename string, src []byte) (*tsast.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	if len(src) > p.maxFileSize {
		return nil, fmt.Errorf("parse %s: %w: size %d exceeds limit %d", filename, ErrFileTooLarge, len(src), p.maxFileSize)
	}

	if !utf8.Valid(src) {
		return nil, fmt.Errorf("parse %s: %w: not valid UTF-8", filename, ErrInvalidContent)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	if strings.HasSuffix(filename, ".tsx") {
		parser.SetLanguage(tsx.GetLanguage())
	} else {
		parser.SetLanguage(typescript.GetLanguage())
	}

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: tree-sitter: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parse %s: tree-sitter returned no root node", filename)
	}

	if root.HasError() {
		p.logger.LogAttrs(ctx, slog.LevelDebug, "Source contains syntax errors", slog.String("file", filename))
	}

	c := converter{b: tsast.NewBuilder(filename, src), src: src}
	c.comments(root)
	c.node(root, tsast.NoNode, tsast.NoEdge)

	return c.b.Tree(), nil
}
