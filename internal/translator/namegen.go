package translator

import "fmt"

// NameGenerator produces a fresh, never-repeating temporary identifier on
// each call, used to name the hoisted results of side-effecting procedure
// calls found in expression position.
type NameGenerator struct {
	counter int
}

func NewNameGenerator() *NameGenerator {
	return &NameGenerator{}
}

func (g *NameGenerator) Next() string {
	name := fmt.Sprintf("tmp%d", g.counter)
	g.counter++
	return name
}
