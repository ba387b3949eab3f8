package sampler

import "sync"

// nPrimeBases is the size of the prime table the Halton sampler cycles
// through, matching the reference renderer's fixed table of the first 1000
// primes (spec §4.C). Generated once by trial division rather than embedded
// as a literal table: the values are identical, and generating them avoids
// shipping 1000 magic numbers.
const nPrimeBases = 1000

var (
	primesOnce  sync.Once
	primesTable []int
)

func primes() []int {
	primesOnce.Do(func() {
		primesTable = make([]int, 0, nPrimeBases)
		for candidate := 2; len(primesTable) < nPrimeBases; candidate++ {
			isPrime := true
			for _, p := range primesTable {
				if p*p > candidate {
					break
				}
				if candidate%p == 0 {
					isPrime = false
					break
				}
			}
			if isPrime {
				primesTable = append(primesTable, candidate)
			}
		}
	})
	return primesTable
}
