package core

import (
	"errors"
	"slices"

	"github.com/vskvj3/listlab/internal/datastructures"
)

var (
	ErrEmptyKey    = errors.New("key cannot be empty")
	ErrEmptyValue  = errors.New("value cannot be empty")
	ErrKeyNotFound = errors.New("key not found")
)

// Database holds named doubly linked lists of strings.
type Database struct {
	lists map[string]*datastructures.DoublyLinkedList[string]
}

// Create a new database instance
func NewDatabase() *Database {
	return &Database{
		lists: make(map[string]*datastructures.DoublyLinkedList[string]),
	}
}

// list returns the list stored under key, creating it when create is set.
func (db *Database) list(key string, create bool) (*datastructures.DoublyLinkedList[string], error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	l, ok := db.lists[key]
	if !ok {
		if !create {
			return nil, ErrKeyNotFound
		}
		l = datastructures.NewDoublyLinkedList[string]()
		db.lists[key] = l
	}
	return l, nil
}

// dropIfEmpty forgets key once its list has no nodes left.
func (db *Database) dropIfEmpty(key string) {
	if l, ok := db.lists[key]; ok && l.IsEmpty() {
		delete(db.lists, key)
	}
}

func (db *Database) PushFront(key, value string) error {
	if value == "" {
		return ErrEmptyValue
	}
	l, err := db.list(key, true)
	if err != nil {
		return err
	}
	l.PushFront(value)
	return nil
}

func (db *Database) PushBack(key, value string) error {
	if value == "" {
		return ErrEmptyValue
	}
	l, err := db.list(key, true)
	if err != nil {
		return err
	}
	l.PushBack(value)
	return nil
}

// InsertAfter inserts value after the first occurrence of target in key's list.
func (db *Database) InsertAfter(key, target, value string) error {
	if value == "" {
		return ErrEmptyValue
	}
	l, err := db.list(key, false)
	if err != nil {
		return err
	}
	return l.InsertAfterValue(target, value)
}

// InsertAt inserts value at index. Index 0 on a missing key creates the list.
func (db *Database) InsertAt(key string, index int, value string) error {
	if value == "" {
		return ErrEmptyValue
	}
	l, err := db.list(key, index == 0)
	if err != nil {
		return err
	}
	return l.InsertAtIndex(index, value)
}

func (db *Database) DeleteFront(key string) (string, error) {
	l, err := db.list(key, false)
	if err != nil {
		return "", err
	}
	defer db.dropIfEmpty(key)
	return l.DeleteFront()
}

func (db *Database) DeleteBack(key string) (string, error) {
	l, err := db.list(key, false)
	if err != nil {
		return "", err
	}
	defer db.dropIfEmpty(key)
	return l.DeleteBack()
}

// Delete removes the first occurrence of value from key's list.
func (db *Database) Delete(key, value string) error {
	l, err := db.list(key, false)
	if err != nil {
		return err
	}
	defer db.dropIfEmpty(key)
	return l.DeleteByValue(value)
}

func (db *Database) Find(key, value string) (bool, int, error) {
	l, err := db.list(key, false)
	if err != nil {
		return false, 0, err
	}
	found, index := l.Find(value)
	return found, index, nil
}

// Length returns the list length; a missing key counts as an empty list.
func (db *Database) Length(key string) int {
	l, err := db.list(key, false)
	if err != nil {
		return 0
	}
	return l.Length()
}

func (db *Database) Reverse(key string) error {
	l, err := db.list(key, false)
	if err != nil {
		return err
	}
	l.Reverse()
	return nil
}

// Range returns the values of key's list from head to tail.
func (db *Database) Range(key string) ([]string, error) {
	l, err := db.list(key, false)
	if err != nil {
		return nil, err
	}
	return l.Values(), nil
}

// Verify checks the invariants of key's list.
func (db *Database) Verify(key string) error {
	l, err := db.list(key, false)
	if err != nil {
		return err
	}
	return l.Verify()
}

// Keys returns the names of all stored lists in sorted order.
func (db *Database) Keys() []string {
	keys := make([]string, 0, len(db.lists))
	for k := range db.lists {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
