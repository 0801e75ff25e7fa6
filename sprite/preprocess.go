// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/stringsx"
)

var (
	// ErrUnbalancedDirective is returned for an #else or #endif without
	// a matching #ifdef, a second #else, or an unclosed #ifdef.
	ErrUnbalancedDirective = errors.New("sprite: unbalanced preprocessor directive")

	// ErrUnknownDirective is returned for a line starting with # that is
	// not one of the supported directives.
	ErrUnknownDirective = errors.New("sprite: unknown preprocessor directive")
)

// cond is one open #ifdef block.
type cond struct {
	// parent is whether the enclosing block is emitting lines.
	parent bool

	// taken is whether the #ifdef branch was selected.
	taken bool

	// inElse is whether the #else has been seen.
	inElse bool

	// line is where the block was opened, for errors.
	line int
}

func (c *cond) active() bool {
	return c.parent && (c.taken != c.inElse)
}

// Preprocess processes #ifdef NAME, #ifndef NAME, #else and #endif
// directives in the given code, keeping the lines of the selected
// branches for the given defines. Directive lines are replaced by
// comments so that line numbers in compiler errors still match.
func Preprocess(code string, defines map[string]bool) (string, error) {
	fl := stringsx.SplitLines(code)
	var stack []*cond
	emitting := func() bool {
		return len(stack) == 0 || stack[len(stack)-1].active()
	}
	for li, ln := range fl {
		tl := strings.TrimSpace(ln)
		if !strings.HasPrefix(tl, "#") {
			if !emitting() {
				fl[li] = ""
			}
			continue
		}
		fs := strings.Fields(tl)
		switch fs[0] {
		case "#ifdef", "#ifndef":
			if len(fs) != 2 {
				return "", fmt.Errorf("sprite: line %d: %s needs one name", li+1, fs[0])
			}
			taken := defines[fs[1]]
			if fs[0] == "#ifndef" {
				taken = !taken
			}
			stack = append(stack, &cond{parent: emitting(), taken: taken, line: li + 1})
		case "#else":
			if len(stack) == 0 {
				return "", fmt.Errorf("%w: line %d: #else without #ifdef", ErrUnbalancedDirective, li+1)
			}
			top := stack[len(stack)-1]
			if top.inElse {
				return "", fmt.Errorf("%w: line %d: second #else", ErrUnbalancedDirective, li+1)
			}
			top.inElse = true
		case "#endif":
			if len(stack) == 0 {
				return "", fmt.Errorf("%w: line %d: #endif without #ifdef", ErrUnbalancedDirective, li+1)
			}
			stack = stack[:len(stack)-1]
		default:
			return "", fmt.Errorf("%w: line %d: %s", ErrUnknownDirective, li+1, fs[0])
		}
		fl[li] = "// " + tl
	}
	if len(stack) > 0 {
		return "", fmt.Errorf("%w: #ifdef on line %d is not closed", ErrUnbalancedDirective, stack[len(stack)-1].line)
	}
	return strings.Join(fl, "\n"), nil
}
