package render

import (
	"strings"

	"github.com/matzehuels/dotmark/pkg/errors"
)

// Engine names a Graphviz layout engine.
type Engine string

const (
	EngineDot   Engine = "dot"
	EngineCirco Engine = "circo"
)

// Engines lists the supported engines in their canonical order.
func Engines() []Engine {
	return []Engine{EngineDot, EngineCirco}
}

// Valid reports whether e is a supported engine.
func (e Engine) Valid() bool {
	return e == EngineDot || e == EngineCirco
}

func (e Engine) String() string { return string(e) }

// ParseEngine resolves a fenced-code language tag or CLI flag to an Engine.
// Matching is exact: "DOT" and " dot" are not engines.
func ParseEngine(s string) (Engine, error) {
	e := Engine(s)
	if !e.Valid() {
		names := make([]string, 0, len(Engines()))
		for _, e := range Engines() {
			names = append(names, string(e))
		}
		return "", errors.New(errors.ErrCodeInvalidEngine,
			"unsupported engine %q (must be one of: %s)", s, strings.Join(names, ", "))
	}
	return e, nil
}
