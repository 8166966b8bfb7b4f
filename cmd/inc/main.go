package main

import (
	"fmt"
	"os"
	"strconv"

	"magicinc/internal/magic"
)

func main() {
	if len(os.Args) <= 1 {
		fmt.Println("Usage: inc <value> [count]")
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

	for _, v := range magic.Take(magic.Successors(s), n) {
		fmt.Println(v)
	}
}
