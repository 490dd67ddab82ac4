package main

import (
	"fmt"
	"strings"

	"github.com/paulhankin/poker"
)

var cardRanks = map[byte]poker.Rank{
	'A': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7,
	'8': 8, '9': 9, 'T': 10, 'J': 11, 'Q': 12, 'K': 13,
}

var cardSuits = map[byte]poker.Suit{
	'c': poker.Club,
	'd': poker.Diamond,
	'h': poker.Heart,
	's': poker.Spade,
}

// parseCard reads a card code such as "Ah" or "Td".
func parseCard(code string) (poker.Card, error) {
	var none poker.Card
	if len(code) != 2 {
		return none, fmt.Errorf("invalid card %q", code)
	}
	rank, ok := cardRanks[strings.ToUpper(code[:1])[0]]
	if !ok {
		return none, fmt.Errorf("invalid rank in card %q", code)
	}
	suit, ok := cardSuits[strings.ToLower(code[1:])[0]]
	if !ok {
		return none, fmt.Errorf("invalid suit in card %q", code)
	}
	return poker.MakeCard(suit, rank)
}

// describeHand names the hand made by the hole and community cards. It
// returns an empty string unless exactly five or seven cards are known.
func describeHand(hole, community []string) (string, error) {
	codes := append(append([]string{}, hole...), community...)
	if len(codes) != 5 && len(codes) != 7 {
		return "", nil
	}
	cards := make([]poker.Card, 0, len(codes))
	for _, code := range codes {
		c, err := parseCard(code)
		if err != nil {
			return "", err
		}
		cards = append(cards, c)
	}
	return poker.Describe(cards)
}
