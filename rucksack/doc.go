// Package rucksack finds item types shared between rucksack compartments
// and between groups of three rucksacks, and sums their priorities.
//
// Item types a..z have priorities 1..26 and A..Z have 27..52. Item sets are
// bitsets indexed by priority, so a shared item is a set intersection.
package rucksack
