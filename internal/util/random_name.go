package util

import (
	"fmt"

	"softypoker/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Trotting", "Weaving", "Waiving", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Lucky", "Bold", "Soft", "Golden",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo", "Giraffe", "Antelope", "Lion", "Tiger",
	"Bear", "Muskrat", "Otter", "Dolphin", "Porcupine", "Gerbil", "Hedgehog", "Snake", "Lizard", "Chipmunk",
	"Okapi", "Eagle", "Wolf", "Fox", "Panda",
}

// RandomName returns a player name by combining an adjective with an animal
func RandomName(gen rng.Generator) string {
	if gen == nil {
		gen = rng.Crypto{}
	}

	adjective := adjectives[gen.Intn(len(adjectives))]
	animal := animals[gen.Intn(len(animals))]

	return fmt.Sprintf("%s %s", adjective, animal)
}
