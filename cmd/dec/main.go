package main

import (
	"fmt"
	"os"
	"strconv"

	"magicinc/internal/magic"
)

func main() {
	if len(os.Args) <= 1 {
		fmt.Println("Usage: dec <value> [count]")
		return
	}

	s := os.Args[1]

	n := 1
	if len(os.Args) > 2 {
		var err error
		n, err = strconv.Atoi(os.Args[2])
		if err != nil || n < 1 {
			fmt.Println("Count must be a positive whole number.")
			return
		}
	}

	values := magic.Take(magic.Predecessors(s), n)
	if len(values) == 0 {
		// Nothing left to decrement.
		values = []string{s}
	}
	for _, v := range values {
		fmt.Println(v)
	}
}
