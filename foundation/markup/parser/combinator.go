// File: combinator.go
// Title: Markup Parser Combinators
// Description: Generic building blocks for grammar rules: character
//              classes, literals, repetition, ordered choice and sequencing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"strconv"
	"strings"
)

// Rule is a grammar rule. On success it returns the remaining input and the
// parsed value. On failure it returns the input it was given, unchanged,
// and a *SyntaxError.
type Rule[T any] func(in Input) (Input, T, error)

// Satisfy matches a single rune accepted by pred
func Satisfy(expected string, pred func(rune) bool) Rule[rune] {
	return func(in Input) (Input, rune, error) {
		r, size := in.peek()
		if size == 0 || !pred(r) {
			return in, 0, fail(in, expected)
		}
		return in.advance(size), r, nil
	}
}

// Char matches the rune c
func Char(c rune) Rule[rune] {
	return Satisfy(strconv.QuoteRune(c), func(r rune) bool { return r == c })
}

// NoneOf matches any single rune not contained in chars
func NoneOf(chars string) Rule[rune] {
	return Satisfy("any character except "+strconv.Quote(chars), func(r rune) bool {
		return !strings.ContainsRune(chars, r)
	})
}

// Tag matches the literal s
func Tag(s string) Rule[string] {
	expected := strconv.Quote(s)
	return func(in Input) (Input, string, error) {
		if !strings.HasPrefix(in.Rest(), s) {
			return in, "", fail(in, expected)
		}
		return in.advance(len(s)), s, nil
	}
}

// TakeWhile0 matches zero or more runes accepted by pred and returns them
// as a string
func TakeWhile0(pred func(rune) bool) Rule[string] {
	return func(in Input) (Input, string, error) {
		rest := in.Rest()
		n := strings.IndexFunc(rest, func(r rune) bool { return !pred(r) })
		if n < 0 {
			n = len(rest)
		}
		return in.advance(n), rest[:n], nil
	}
}

// TakeWhile1 matches one or more runes accepted by pred
func TakeWhile1(expected string, pred func(rune) bool) Rule[string] {
	takeWhile := TakeWhile0(pred)
	return func(in Input) (Input, string, error) {
		next, s, _ := takeWhile(in)
		if s == "" {
			return in, "", fail(in, expected)
		}
		return next, s, nil
	}
}

// Multispace0 matches zero or more spaces, tabs, carriage returns and newlines
func Multispace0() Rule[string] {
	return TakeWhile0(isMultispace)
}

func isMultispace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// Many0 applies rule until it fails and collects the results. A recoverable
// failure ends the repetition; a fatal failure is returned. Repetition also
// stops when rule succeeds without consuming input.
func Many0[T any](rule Rule[T]) Rule[[]T] {
	return func(in Input) (Input, []T, error) {
		var items []T
		current := in
		for {
			next, item, err := rule(current)
			if err != nil {
				if isFatal(err) {
					return in, nil, err
				}
				return current, items, nil
			}
			if next.offset == current.offset {
				return current, items, nil
			}
			items = append(items, item)
			current = next
		}
	}
}

// Alt tries each rule in order on the same input and returns the first
// success. If all fail, the failure that got furthest into the input is
// returned. Fatal failures are returned immediately.
func Alt[T any](rules ...Rule[T]) Rule[T] {
	return func(in Input) (Input, T, error) {
		var zero T
		var best error
		for _, rule := range rules {
			next, value, err := rule(in)
			if err == nil {
				return next, value, nil
			}
			if isFatal(err) {
				return in, zero, err
			}
			best = furthest(best, err)
		}
		if best == nil {
			best = fail(in, "one of the alternatives")
		}
		return in, zero, best
	}
}

// Map transforms the value of a successful rule
func Map[A, B any](rule Rule[A], fn func(A) B) Rule[B] {
	return func(in Input) (Input, B, error) {
		next, value, err := rule(in)
		if err != nil {
			var zero B
			return in, zero, err
		}
		return next, fn(value), nil
	}
}

// Preceded matches prefix then rule and returns the value of rule
func Preceded[A, B any](prefix Rule[A], rule Rule[B]) Rule[B] {
	return func(in Input) (Input, B, error) {
		var zero B
		next, _, err := prefix(in)
		if err != nil {
			return in, zero, err
		}
		next, value, err := rule(next)
		if err != nil {
			return in, zero, err
		}
		return next, value, nil
	}
}

// Delimited matches open, rule and close and returns the value of rule
func Delimited[A, B, C any](open Rule[A], rule Rule[B], close Rule[C]) Rule[B] {
	return func(in Input) (Input, B, error) {
		var zero B
		next, value, err := Preceded(open, rule)(in)
		if err != nil {
			return in, zero, err
		}
		next, _, err = close(next)
		if err != nil {
			return in, zero, err
		}
		return next, value, nil
	}
}

// Label names the rule in errors it returns, unless a nested rule already
// did
func Label[T any](name string, rule Rule[T]) Rule[T] {
	return func(in Input) (Input, T, error) {
		next, value, err := rule(in)
		if err != nil {
			var syntaxErr *SyntaxError
			if errors.As(err, &syntaxErr) && syntaxErr.Rule == "" {
				syntaxErr.Rule = name
			}
			return in, value, err
		}
		return next, value, nil
	}
}
