// Package slug generates the short, pronounceable unique names under
// which notes are shared.
package slug

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
)

// words is the pool slugs are drawn from. Kept short and easy to
// spell so a name can be read out loud.
var words = []string{
	"light", "hope", "peace", "grace", "joy", "truth", "vine", "lamb",
	"seed", "star", "bread", "rock", "path", "gift", "ark", "fish",
	"well", "door", "oil", "crown",

	"abel", "levi", "amos", "noah", "ruth", "ezra", "luke", "mark",
	"joel", "paul", "john", "mary", "anna", "adam", "eve", "matthew",
	"david", "samuel", "joseph", "elijah", "benjamin", "isaac", "jacob",

	"river", "hill", "rain", "water", "wind", "sun", "fig", "oak", "leaf",
	"sand", "stone", "cloud", "mountain", "tree", "flower",
}

// Checker reports which names starting with a given base are already
// taken. The check is case-insensitive on the store side.
type Checker interface {
	NamesWithPrefix(ctx context.Context, base string) ([]string, error)
}

// Generator produces collision-free note names of the form
// "word-word" or "word-word-N".
type Generator struct {
	rand *rand.Rand
}

// New creates a Generator seeded with src.
func New(src rand.Source) *Generator {
	return &Generator{rand: rand.New(src)}
}

// Generate picks a two-word base and appends the smallest numeric
// suffix that makes the name unique among existing names.
func (g *Generator) Generate(ctx context.Context, store Checker) (string, error) {
	base := words[g.rand.Intn(len(words))] + "-" + words[g.rand.Intn(len(words))]

	existing, err := store.NamesWithPrefix(ctx, base)
	if err != nil {
		return "", fmt.Errorf("slug: list existing names: %w", err)
	}
	taken := make(map[string]struct{}, len(existing))
	for _, n := range existing {
		taken[strings.ToLower(n)] = struct{}{}
	}

	name := base
	for counter := 1; ; counter++ {
		if _, ok := taken[strings.ToLower(name)]; !ok {
			return name, nil
		}
		name = fmt.Sprintf("%s-%d", base, counter)
	}
}
