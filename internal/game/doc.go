// Package game reconstructs the betting of a Texas Hold'em hand from its
// compact ACPC action string.
//
// Records carry only the per-street tokens and the terminal net results. The
// package re-derives everything in between: who acted when, what each player
// put in on every street, who folded, the final pot and who collects it.
//
// # Basic Usage
//
//	rec, err := acpc.Parse(line, acpc.ParseOptions{Game: acpc.Limit, BigBlind: 10})
//	hand, err := game.Replay(rec)
//	outcome, err := game.ResolvePot(hand.State, rec.Results)
//
// # Architecture
//
// Replay delegates to specialised pieces:
//   - ResolvePositions: fixed role table keyed by player count
//   - Tokenize: splits a street's action string into fold, check/call and bet/raise tokens
//   - ReplayStreet: walks the tokens with a wrap-around actor pointer, emitting Events
//   - ResolveRaiseIncrement: turns a no-limit absolute target into a raise size
//   - ResolvePot: awards the pot, returning uncalled chips and splitting chops
//
// Every function works on per-hand values only, so hands can be replayed
// concurrently.
package game
