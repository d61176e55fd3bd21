package countmin_test

import (
	"fmt"

	"github.com/keilerkonzept/countmin"
)

func Example() {
	sketch, err := countmin.New(3, 10000)
	if err != nil {
		panic(err)
	}
	sketch.Add(4, 114514)
	sketch.Incr(4)

	fmt.Println(sketch.Columns(), sketch.Count(4))
	// Output: 10007 114515
}
