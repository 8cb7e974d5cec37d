package console

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-pqueue/pkg/datastructs/pqueue"
	"github.com/huynhanx03/go-pqueue/pkg/generator"
	"github.com/huynhanx03/go-pqueue/pkg/pqio"
	"github.com/huynhanx03/go-pqueue/pkg/runtime"
)

var menuTitles = map[pqueue.Kind]string{
	pqueue.KindHeap:  "Heap-Based Priority Queue",
	pqueue.KindArray: "Array-Based Priority Queue",
}

const (
	optInsert = iota + 1
	optExtractMax
	optFindMax
	optModifyKey
	optIncreaseKey
	optDecreaseKey
	optSize
	optPrint
	optRandom
	optLoad
	optSave
	optClear
	optBack
)

// QueueMenu runs the operation menu of one queue until the user goes back.
func (c *Console) QueueMenu(ctx context.Context, kind pqueue.Kind) error {
	q, ok := c.queues[kind]
	if !ok {
		return pqueue.ErrUnknownKind
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("\n===== %s Menu =====\n", menuTitles[kind])
		c.println("1. Insert element")
		c.println("2. Extract highest-priority element")
		c.println("3. Find highest-priority element")
		c.println("4. Change element priority")
		c.println("5. Increase element priority")
		c.println("6. Decrease element priority")
		c.println("7. Show queue size")
		c.println("8. Print queue")
		c.println("9. Create random queue")
		c.println("10. Load from file")
		c.println("11. Save to file")
		c.println("12. Clear queue")
		c.println("13. Back")

		choice, err := c.readInt("Choose an option: ")
		if err != nil {
			return err
		}
		if choice == optBack {
			return nil
		}
		if err := c.dispatch(q, choice); err != nil {
			return err
		}
	}
}

// dispatch runs one menu option. Only input errors are returned; queue
// errors are reported and the menu continues.
func (c *Console) dispatch(q pqueue.PriorityQueue[int], choice int) error {
	switch choice {
	case optInsert:
		value, err := c.readInt("Enter element value: ")
		if err != nil {
			return err
		}
		priority, err := c.readInt("Enter priority: ")
		if err != nil {
			return err
		}
		ns := runtime.Measure(func() { q.Insert(value, priority) })
		c.printf("Element inserted. Took %d ns\n", ns)

	case optExtractMax:
		var (
			value int
			err   error
		)
		ns := runtime.Measure(func() { value, err = q.ExtractMax() })
		if err != nil {
			c.report("extract max", err)
			return nil
		}
		c.printf("Extracted element: %d. Took %d ns\n", value, ns)

	case optFindMax:
		var (
			value int
			err   error
		)
		ns := runtime.Measure(func() { value, err = q.FindMax() })
		if err != nil {
			c.report("find max", err)
			return nil
		}
		c.printf("Highest-priority element: %d. Took %d ns\n", value, ns)

	case optModifyKey, optIncreaseKey, optDecreaseKey:
		return c.changeKey(q, choice)

	case optSize:
		var size int
		ns := runtime.Measure(func() { size = q.Size() })
		c.printf("Queue size: %d elements. Took %d ns\n", size, ns)

	case optPrint:
		if q.IsEmpty() {
			c.println("Queue is empty.")
			return nil
		}
		for _, e := range q.Entries() {
			c.printf("(%d, %d) ", e.Value, e.Priority)
		}
		c.println()
		c.printf("Queue size: %d elements\n", q.Size())

	case optRandom:
		size, err := c.readInt("Enter queue size: ")
		if err != nil {
			return err
		}
		lo, err := c.readInt("Enter minimum priority: ")
		if err != nil {
			return err
		}
		hi, err := c.readInt("Enter maximum priority: ")
		if err != nil {
			return err
		}
		var fillErr error
		ns := runtime.Measure(func() { fillErr = generator.Fill(q, size, lo, hi, c.rng) })
		if fillErr != nil {
			c.report("random fill", fillErr)
			return nil
		}
		c.printf("Created random queue with %d elements. Took %s\n", size, time.Duration(ns))

	case optLoad:
		path, err := c.readLine("Enter file name to load: ")
		if err != nil {
			return err
		}
		var (
			n       int
			loadErr error
		)
		ns := runtime.Measure(func() { n, loadErr = pqio.LoadFile(path, q) })
		if loadErr != nil {
			c.report("load", loadErr)
			return nil
		}
		c.printf("Loaded %d pairs from file. Took %s\n", n, time.Duration(ns))
		c.printf("Queue size after loading: %d elements\n", q.Size())

	case optSave:
		if q.IsEmpty() {
			c.println("Queue is empty, nothing to save.")
			return nil
		}
		path, err := c.readLine("Enter file name to save: ")
		if err != nil {
			return err
		}
		var saveErr error
		ns := runtime.Measure(func() { _, saveErr = pqio.SaveFile(path, q) })
		if saveErr != nil {
			c.report("save", saveErr)
			return nil
		}
		c.printf("Saved queue to file. Took %s\n", time.Duration(ns))

	case optClear:
		ns := runtime.Measure(q.Clear)
		c.printf("Queue cleared. Took %d ns\n", ns)

	default:
		c.println("Invalid choice. Try again.")
	}
	return nil
}

func (c *Console) changeKey(q pqueue.PriorityQueue[int], choice int) error {
	if q.IsEmpty() {
		c.println("Queue is empty.")
		return nil
	}

	value, err := c.readInt("Enter element value: ")
	if err != nil {
		return err
	}
	current, err := q.GetPriority(value)
	if err != nil {
		c.report("get priority", err)
		return nil
	}
	c.printf("Current priority of element %d is %d\n", value, current)

	prompt, verb, apply := "Enter new priority: ", "changed", q.ModifyKey
	switch choice {
	case optIncreaseKey:
		prompt, verb, apply = "Enter new (higher) priority: ", "increased", q.IncreaseKey
	case optDecreaseKey:
		prompt, verb, apply = "Enter new (lower) priority: ", "decreased", q.DecreaseKey
	}

	priority, err := c.readInt(prompt)
	if err != nil {
		return err
	}
	var applyErr error
	ns := runtime.Measure(func() { applyErr = apply(value, priority) })
	if applyErr != nil {
		c.report(verb+" priority", applyErr)
		return nil
	}
	c.printf("Priority %s from %d to %d. Took %d ns\n", verb, current, priority, ns)
	return nil
}

func (c *Console) report(op string, err error) {
	c.log.Debug("queue operation failed", zap.String("operation", op), zap.Error(err))
	c.printf("Error: %v\n", err)
}
