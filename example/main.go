package main

import (
	"cmp"
	"fmt"

	"github.com/mgnsk/chainy"
)

func main() {
	l := chainy.New(chainy.WithCapacity[string](8))
	defer l.Destroy()

	for _, s := range []string{"alpha", "charlie", "delta"} {
		if err := l.Add(s); err != nil {
			panic(err)
		}
	}

	// Jump to "charlie" and insert in front of it.
	k, ok := l.Find(cmp.Compare[string], "charlie")
	if !ok {
		panic("charlie not found")
	}

	l.SetLink(k)

	if err := l.Add("bravo"); err != nil {
		panic(err)
	}

	for s := range l.All() {
		fmt.Println(s)
	}

	fmt.Println("chainy", chainy.Version)
}
