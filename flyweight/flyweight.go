package flyweight

import (
	"fmt"
	"io"
	"sync"
	"unique"
)

// ReusableObject is an immutable flyweight identified by its name.
type ReusableObject struct {
	name unique.Handle[string]
}

// Name returns the intrinsic state.
func (r *ReusableObject) Name() string { return r.name.Value() }

// Handle returns the process-wide canonical handle for the name. Objects
// interned by different caches under the same name share a handle.
func (r *ReusableObject) Handle() unique.Handle[string] { return r.name }

func (r *ReusableObject) String() string {
	return fmt.Sprintf("ReusableObject{name='%s'}", r.name.Value())
}

// Cache interns ReusableObjects by name. The zero value is ready to use.
type Cache struct {
	mu      sync.Mutex
	objects map[string]*ReusableObject
}

// NewCache returns an empty cache.
func NewCache() *Cache { return &Cache{} }

// Intern returns the shared object for name, creating it on first use.
func (c *Cache) Intern(name string) *ReusableObject {
	c.mu.Lock()
	defer c.mu.Unlock()

	if obj, ok := c.objects[name]; ok {
		return obj
	}
	if c.objects == nil {
		c.objects = make(map[string]*ReusableObject)
	}
	obj := &ReusableObject{name: unique.Make(name)}
	c.objects[name] = obj

	return obj
}

// Size returns the number of distinct names interned.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.objects)
}

// Handler creates things of a given size out of a shared flyweight.
type Handler interface {
	Create(size int)
}

type handlerFunc func(size int)

func (f handlerFunc) Create(size int) { f(size) }

// HandlerFor returns a Handler that interns name in cache on every Create
// and reports the creation to w.
func HandlerFor(cache *Cache, name string, w io.Writer) Handler {
	return handlerFunc(func(size int) {
		obj := cache.Intern(name)
		fmt.Fprintf(w, "Creating %s of size %d\n", obj, size)
	})
}
