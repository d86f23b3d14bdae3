package core

import (
	"math/rand"
	"time"
)

// Source supplies random integers in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

func defaultSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
