package slug

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
)

type fakeChecker struct {
	names []string
}

func (f *fakeChecker) NamesWithPrefix(_ context.Context, _ string) ([]string, error) {
	return f.names, nil
}

func TestGenerateShape(t *testing.T) {
	g := New(rand.NewSource(1))
	name, err := g.Generate(context.Background(), &fakeChecker{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !regexp.MustCompile(`^[a-z]+-[a-z]+$`).MatchString(name) {
		t.Errorf("name = %q, want word-word", name)
	}
}

func TestGenerateCollisionSuffix(t *testing.T) {
	g := New(rand.NewSource(1))
	first, err := g.Generate(context.Background(), &fakeChecker{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Same seed picks the same base; pre-seed the checker with it.
	g = New(rand.NewSource(1))
	name, err := g.Generate(context.Background(), &fakeChecker{names: []string{first}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if name != first+"-1" {
		t.Errorf("name = %q, want %q", name, first+"-1")
	}

	g = New(rand.NewSource(1))
	name, err = g.Generate(context.Background(), &fakeChecker{names: []string{first, first + "-1"}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if name != first+"-2" {
		t.Errorf("name = %q, want %q", name, first+"-2")
	}
}

func TestGenerateCaseInsensitive(t *testing.T) {
	g := New(rand.NewSource(1))
	first, _ := g.Generate(context.Background(), &fakeChecker{})

	g = New(rand.NewSource(1))
	upper := &fakeChecker{names: []string{regexp.MustCompile(`^.`).ReplaceAllStringFunc(first, func(s string) string {
		return string(s[0] - 'a' + 'A')
	})}}
	name, err := g.Generate(context.Background(), upper)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if name != first+"-1" {
		t.Errorf("name = %q, want suffix despite case difference", name)
	}
}
