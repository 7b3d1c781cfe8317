package engine

import "math/rand/v2"

// hinglishTips are short conversational nudges shown alongside
// results, in the Hinglish register the product uses everywhere.
var hinglishTips = []string{
	"Petrol mehenga padta hai long term 😅 EV zyada sasta hai!",
	"Ek baar EV liya toh fuel bill bhool jaoge! ⚡",
	"Green drive = smart drive. Paisa bhi bachao, planet bhi 🌍",
	"EV mein maintenance bhi kam hota hai boss! 🔧",
	"CO₂ kam, savings zyada — what a deal! 🤑",
}

// RandomTip returns one Hinglish tip at random.
func RandomTip() string {
	return hinglishTips[rand.IntN(len(hinglishTips))]
}

// Tips returns the full tip list in stable order.
func Tips() []string {
	out := make([]string, len(hinglishTips))
	copy(out, hinglishTips)
	return out
}
