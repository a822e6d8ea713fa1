// Package cache provides a small thread-safe LRU cache for rendered output
// that is expensive to produce, such as Glamour-rendered documentation.
package cache

import (
	"sync"
)

// DefaultSize is used when a non-positive size is requested.
const DefaultSize = 64

// LRU is a fixed-size least-recently-used cache of strings.
type LRU struct {
	maxSize int
	entries map[string]*node
	head    *node
	tail    *node
	hits    int
	misses  int
	mu      sync.Mutex
}

// node is an entry of the doubly-linked recency list.
type node struct {
	key   string
	value string
	prev  *node
	next  *node
}

// NewLRU creates a cache holding at most maxSize entries.
func NewLRU(maxSize int) *LRU {
	if maxSize <= 0 {
		maxSize = DefaultSize
	}

	// sentinels
	head := &node{}
	tail := &node{}
	head.next = tail
	tail.prev = head

	return &LRU{
		maxSize: maxSize,
		entries: make(map[string]*node),
		head:    head,
		tail:    tail,
	}
}

// Get returns the cached value and marks it as recently used.
func (c *LRU) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		c.misses++
		return "", false
	}
	c.hits++
	c.moveToHead(n)
	return n.value, true
}

// Set adds or replaces a value, evicting the least recently used entry when full.
func (c *LRU) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		n.value = value
		c.moveToHead(n)
		return
	}

	n := &node{key: key, value: value}
	c.entries[key] = n
	c.addToHead(n)

	if len(c.entries) > c.maxSize {
		c.evictLRU()
	}
}

// Delete removes a key.
func (c *LRU) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.removeNode(n)
		delete(c.entries, key)
	}
}

// Len returns the number of cached entries.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry. Statistics are kept.
func (c *LRU) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*node)
	c.head.next = c.tail
	c.tail.prev = c.head
}

// Stats returns usage counters.
func (c *LRU) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Size:    len(c.entries),
		MaxSize: c.maxSize,
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

// Stats describes cache usage.
type Stats struct {
	Size    int
	MaxSize int
	Hits    int
	Misses  int
}

// Must be called with mu held.
func (c *LRU) moveToHead(n *node) {
	c.removeNode(n)
	c.addToHead(n)
}

func (c *LRU) addToHead(n *node) {
	n.prev = c.head
	n.next = c.head.next
	c.head.next.prev = n
	c.head.next = n
}

func (c *LRU) removeNode(n *node) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

func (c *LRU) evictLRU() {
	last := c.tail.prev
	if last == c.head {
		return
	}
	c.removeNode(last)
	delete(c.entries, last.key)
}
