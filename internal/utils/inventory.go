package utils

import "github.com/osse101/HealingGarden_Go/internal/domain"

// FindSeed finds the inventory line for a species.
// Returns the index of the line and its count, or -1, 0 if absent.
func FindSeed(seeds []domain.SeedItem, t domain.PlantType) (int, int) {
	for i, s := range seeds {
		if s.Type == t {
			return i, s.Count
		}
	}
	return -1, 0
}

// AddSeeds merges n seeds of a species into the inventory, creating the line when missing.
// Unlimited lines are left untouched.
func AddSeeds(seeds []domain.SeedItem, t domain.PlantType, n int) []domain.SeedItem {
	if n <= 0 {
		return seeds
	}
	idx, _ := FindSeed(seeds, t)
	if idx < 0 {
		return append(seeds, domain.SeedItem{Type: t, Count: n})
	}
	if !seeds[idx].IsUnlimited() {
		seeds[idx].Count += n
	}
	return seeds
}

// TakeSeed removes one seed of a species. A line that reaches exactly zero is removed;
// unlimited lines are never decremented. ok is false when no usable line exists.
func TakeSeed(seeds []domain.SeedItem, t domain.PlantType) ([]domain.SeedItem, bool) {
	idx, count := FindSeed(seeds, t)
	if idx < 0 {
		return seeds, false
	}
	if seeds[idx].IsUnlimited() {
		return seeds, true
	}
	if count <= 0 {
		return seeds, false
	}
	if count == 1 {
		return append(seeds[:idx], seeds[idx+1:]...), true
	}
	seeds[idx].Count--
	return seeds, true
}

// Contains reports whether v is in the set-like slice s
func Contains[T comparable](s []T, v T) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// AddUnique appends v unless it is already present
func AddUnique[T comparable](s []T, v T) []T {
	if Contains(s, v) {
		return s
	}
	return append(s, v)
}

// Remove drops every occurrence of v, preserving order
func Remove[T comparable](s []T, v T) []T {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
