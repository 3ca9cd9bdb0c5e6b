package domain

// RandomSource supplies the randomness used to build quizzes. Implementations
// shared between goroutines must be safe for concurrent use.
type RandomSource interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
	// Shuffle permutes n elements using swap.
	Shuffle(n int, swap func(i, j int))
}
