package dates_test

import (
	"fmt"

	"github.com/katalvlaran/fcltrace/core"
	"github.com/katalvlaran/fcltrace/dates"
)

// ExampleProcess narrows the unknown arrival of "wheat" from the dispatch of
// the flour it was milled into.
func ExampleProcess() {
	s := core.NewSnapshot()
	_, _ = s.AddStation("farm")
	_, _ = s.AddStation("mill")
	_, _ = s.AddStation("bakery")
	_, _ = s.AddDelivery("wheat", "farm", "mill", core.WithDates("", "2024-01-02"))
	_, _ = s.AddDelivery("flour", "mill", "bakery", core.WithDates("2024-01-09", "2024-01-08"))
	_ = s.AddConnection("mill", "wheat", "flour")

	ranges := dates.Process(s)
	fmt.Println("wheat in: ", ranges["wheat"].CompIn)
	fmt.Println("flour out:", ranges["flour"].CompOut)
	// Output:
	// wheat in:  [2024-01-02, 2024-01-08]
	// flour out: [2024-01-08, 2024-01-08]
}
