// Package demo walks each list type through a fixed sequence of operations
// and reports the state after every step.
package demo

import (
	"fmt"
	"strconv"

	"github.com/vskvj3/listlab/internal/datastructures"
	"github.com/vskvj3/listlab/internal/utils"
)

// Reporter receives the progress of a demo run.
type Reporter interface {
	// Step is called after an operation with the rendered list state.
	Step(list, op, state string)
	// Notice carries query results and recoverable failures.
	Notice(list, message string)
}

// LogReporter writes demo progress through a Logger.
type LogReporter struct {
	logger *utils.Logger
}

func NewLogReporter(logger *utils.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Step(list, op, state string) {
	r.logger.With("list", list).Info(op + ": " + state)
}

func (r *LogReporter) Notice(list, message string) {
	r.logger.With("list", list).Warn(message)
}

// Run executes the singly, circular and doubly linked scenarios in order.
// With verify set, the doubly linked list is checked after every mutation and
// the first broken invariant aborts the run.
func Run(r Reporter, verify bool) error {
	runSingly(r)
	runCircular(r)
	return runDoubly(r, verify)
}

func report(r Reporter, list string, err error) {
	if err != nil {
		r.Notice(list, err.Error())
	}
}

func runSingly(r Reporter) {
	const name = "singly"
	l := datastructures.NewSinglyLinkedList[int]()

	for _, v := range []int{10, 20, 30} {
		l.PushFront(v)
	}
	r.Step(name, "push_front 10 20 30", l.String())

	l.PushBack(50)
	l.PushBack(80)
	r.Step(name, "push_back 50 80", l.String())

	_, err := l.PopFront()
	report(r, name, err)
	r.Step(name, "pop_front", l.String())

	if v, err := l.PopBack(); err == nil {
		r.Notice(name, "Popped Value: "+strconv.Itoa(v))
	}
	r.Step(name, "pop_back", l.String())

	report(r, name, l.InsertAtIndex(2, 100))
	r.Step(name, "insert_at_index 2 100", l.String())

	report(r, name, l.InsertAfter(20, 100))
	r.Step(name, "insert_after 20 100", l.String())

	report(r, name, l.InsertAfter(20, 500))
	r.Step(name, "insert_after 20 500", l.String())

	if found, index := l.Find(50); found {
		r.Notice(name, "Found at index: "+strconv.Itoa(index))
	} else {
		r.Notice(name, "Not found")
	}

	if l.IsEmpty() {
		r.Notice(name, "Linked List is empty")
	} else {
		r.Notice(name, "Linked List is not empty")
	}

	l.Reverse()
	r.Step(name, "reverse", l.String())
}

func runCircular(r Reporter) {
	const name = "circular"
	l := datastructures.NewCircularList[int]()
	r.Step(name, "new", l.String())

	l.PushFront(50)
	l.PushFront(60)
	r.Step(name, "push_front 50 60", l.String())

	l.PushBack(40)
	r.Step(name, "push_back 40", l.String())

	_, err := l.PopFront()
	report(r, name, err)
	r.Step(name, "pop_front", l.String())
}

func runDoubly(r Reporter, verify bool) error {
	const name = "doubly"
	l := datastructures.NewDoublyLinkedList[int]()

	step := func(op string) error {
		r.Step(name, op, l.String())
		if !verify {
			return nil
		}
		if err := l.Verify(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
	tail := func() {
		if v, ok := l.Back(); ok {
			r.Notice(name, "Tail value: "+strconv.Itoa(v))
		} else {
			r.Notice(name, "List is empty")
		}
	}

	if err := step("new"); err != nil {
		return err
	}

	for _, v := range []int{10, 20, 30, 40} {
		l.PushFront(v)
	}
	if err := step("push_front 10 20 30 40"); err != nil {
		return err
	}

	l.PushBack(50)
	l.PushBack(60)
	if err := step("push_back 50 60"); err != nil {
		return err
	}
	tail()

	l.PushBack(70)
	l.PushBack(80)
	if err := step("push_back 70 80"); err != nil {
		return err
	}
	tail()

	report(r, name, l.InsertAfterValue(50, 969))
	if err := step("insert_after_value 50 969"); err != nil {
		return err
	}

	report(r, name, l.InsertAfterValue(969, 1000))
	if err := step("insert_after_value 969 1000"); err != nil {
		return err
	}
	r.Notice(name, "List Length: "+strconv.Itoa(l.Length()))

	report(r, name, l.InsertAtIndex(2, 25))
	if err := step("insert_at_index 2 25"); err != nil {
		return err
	}

	report(r, name, l.InsertAtIndex(99, 1))
	if err := step("insert_at_index 99 1"); err != nil {
		return err
	}

	report(r, name, l.DeleteByValue(20))
	if err := step("delete_by_value 20"); err != nil {
		return err
	}

	_, err := l.DeleteFront()
	report(r, name, err)
	if err := step("delete_front"); err != nil {
		return err
	}

	_, err = l.DeleteBack()
	report(r, name, err)
	if err := step("delete_back"); err != nil {
		return err
	}

	if found, index := l.Find(969); found {
		r.Notice(name, "Found 969 at index: "+strconv.Itoa(index))
	}

	l.Reverse()
	if err := step("reverse"); err != nil {
		return err
	}
	tail()

	return nil
}
