package cmd

import (
	"errors"
	"strings"
)

// ErrNoSubstring is returned when there are no remaining tokens to join.
var ErrNoSubstring = errors.New("no arguments to join")

// Arguments is the token list of one invocation. Tokens are consumed from
// the front; Size always reports how many are left.
type Arguments struct {
	tokens    []string
	resolvers *ResolverRegistry
}

// NewArguments copies tokens into a fresh Arguments. reg may be nil, in
// which case NextKind always fails with ResolverNotFound.
func NewArguments(reg *ResolverRegistry, tokens []string) *Arguments {
	return &Arguments{
		tokens:    append([]string(nil), tokens...),
		resolvers: reg,
	}
}

func (a *Arguments) Size() int { return len(a.tokens) }

// NextUnsafe pops the front token, returning "" when none are left.
func (a *Arguments) NextUnsafe() string {
	s, _ := a.Next()
	return s
}

// Next pops the front token.
func (a *Arguments) Next() (string, bool) {
	if len(a.tokens) == 0 {
		return "", false
	}
	s := a.tokens[0]
	a.tokens = a.tokens[1:]
	return s, true
}

// Peek returns the front token without consuming it.
func (a *Arguments) Peek() (string, bool) {
	if len(a.tokens) == 0 {
		return "", false
	}
	return a.tokens[0], true
}

// GetArg removes and returns the token at index i of the remaining tokens.
func (a *Arguments) GetArg(i int) (string, bool) {
	if i < 0 || i >= len(a.tokens) {
		return "", false
	}
	if i == 0 {
		return a.Next()
	}
	s := a.tokens[i]
	rest := make([]string, 0, len(a.tokens)-1)
	rest = append(rest, a.tokens[:i]...)
	a.tokens = append(rest, a.tokens[i+1:]...)
	return s, true
}

// Remaining returns a copy of the tokens not yet consumed.
func (a *Arguments) Remaining() []string {
	return append([]string(nil), a.tokens...)
}

// Joined joins the remaining tokens from index from with single spaces.
func (a *Arguments) Joined(from int) (string, error) {
	return a.JoinArguments(from, " ")
}

// JoinArguments joins the remaining tokens starting at index from using
// sep. Nothing is consumed.
func (a *Arguments) JoinArguments(from int, sep string) (string, error) {
	if from < 0 || from >= len(a.tokens) {
		return "", ErrNoSubstring
	}
	return strings.Join(a.tokens[from:], sep), nil
}

// Copy returns an Arguments over an independent copy of the remaining
// tokens, sharing the resolver registry.
func (a *Arguments) Copy() *Arguments {
	return NewArguments(a.resolvers, a.tokens)
}

// Next pops the front token and resolves it with r. The token is consumed
// even when resolution fails.
func Next[T any](a *Arguments, r Resolver[T]) Optional[T] {
	token, ok := a.Next()
	if !ok {
		return Absent[T](NoMoreTokens)
	}
	return r.apply(token)
}

// NextKind resolves the front token with the resolver registered under kind.
// When no such resolver exists nothing is consumed.
func NextKind[T any](a *Arguments, kind string) Optional[T] {
	r, ok := Lookup[T](a.resolvers, kind)
	if !ok {
		return Absent[T](ResolverNotFound)
	}
	return Next(a, r)
}
