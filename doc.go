// Package luckdraw implements luck-weighted random selection for game-style
// simulations such as loot tables, dice rolls, and randomized events.
//
// Candidates carry a luckiness rank and an optional weight; a scalar luck
// level controls how strongly high-luckiness candidates are favored. The
// package is organized around four pure stages:
//   - Multiplier: maps a luck level to a scalar multiplier.
//   - weight calculation: derives per-candidate sampling weights, decaying
//     the luck level each time the walk crosses into a lower luckiness tier.
//   - weighted sampling: draws candidates without replacement.
//   - selection: PickLucky, PickLuckyOne, and LuckyRandInt orchestrate the
//     stages and map picks back to payloads.
//
// All functions are stateless and consume randomness only through the
// supplied Entropy source; passing nil uses a process-wide source seeded
// from crypto entropy.
package luckdraw
