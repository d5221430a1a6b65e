// Package cubes evaluates a record of cube games.
//
// Each line of the record describes a game: an identifier followed by the sets of coloured cubes revealed from a
// bag, for example "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green". A game is feasible when no set needs
// more cubes of a colour than a given supply. The power of a game is the product of the smallest supply of each
// colour able to produce every one of its sets.
package cubes
