package main

import (
	"fmt"

	"github.com/mgnsk/commons/hashlist"
	"github.com/mgnsk/commons/textutil"
)

func main() {
	words := hashlist.Of("alpha", "beta", "gamma", "delta")

	// Constant time membership alongside list order.
	fmt.Println(words.Contains("gamma"), words.IndexOf("delta"))

	// Filter in place with a cursor.
	c := words.Cursor()
	for c.Next() {
		if len(c.Value()) > 4 {
			c.Remove()
		}
	}

	fmt.Println(words.Values())
	fmt.Println(textutil.Pluralize(words.Len(), "word"), "kept")
}
