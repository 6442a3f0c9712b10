package credentials

import (
	"strings"
	"testing"
)

func TestGenerateGuestName(t *testing.T) {
	adjectiveSet := make(map[string]bool)
	for _, a := range adjectives {
		adjectiveSet[a] = true
	}
	nounSet := make(map[string]bool)
	for _, n := range nouns {
		nounSet[n] = true
	}

	for i := 0; i < 50; i++ {
		name, err := GenerateGuestName()
		if err != nil {
			t.Fatalf("GenerateGuestName() error: %v", err)
		}

		parts := strings.SplitN(name, "-", 2)
		if len(parts) != 2 {
			t.Fatalf("name %q not in adjective-noun format", name)
		}
		if !adjectiveSet[parts[0]] {
			t.Errorf("unknown adjective %q in %q", parts[0], name)
		}
		if !nounSet[parts[1]] {
			t.Errorf("unknown noun %q in %q", parts[1], name)
		}
	}
}
