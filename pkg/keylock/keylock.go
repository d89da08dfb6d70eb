// Package keylock serializa operaciones por clave (p. ej. por timebox) dentro
// del proceso. Claves distintas no se bloquean entre sí.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex mutex por clave; las entradas se liberan cuando nadie las usa.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New construye un KeyedMutex vacío.
func New() *KeyedMutex {
	return &KeyedMutex{entries: make(map[string]*entry)}
}

// Lock bloquea la clave y devuelve la función que la libera.
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}

// Len número de claves en uso (para tests).
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
