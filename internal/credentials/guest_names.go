package credentials

import (
	"crypto/rand"
	"math/big"
)

// Word lists for generating movie-flavored guest display names
var adjectives = []string{
	"midnight", "silent", "technicolor", "noir", "golden", "widescreen",
	"restless", "dazzling", "vintage", "electric", "shadowy", "roaring",
	"celluloid", "starlit", "epic", "indie", "cult", "daring",
	"velvet", "matinee", "silver", "grainy", "panoramic", "lonesome",
}

var nouns = []string{
	"projectionist", "usher", "stuntman", "understudy", "gaffer",
	"director", "screenwriter", "cinephile", "critic", "extra",
	"leadingLady", "antihero", "sidekick", "maverick", "drifter",
	"detective", "gunslinger", "starlet", "mogul", "auteur",
}

// GenerateGuestName generates a display name in the format "adjective-noun"
func GenerateGuestName() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	return adjective + "-" + noun, nil
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}
	return slice[num.Int64()], nil
}
