package cache

import (
	"sync"
	"time"
)

// Item est une entrée de cache avec son échéance d'expiration.
type Item struct {
	Value      interface{}
	Expiration int64
}

// Cache est un cache mémoire simple avec expiration. L'invalidation reste
// à la charge de l'appelant (Delete après toute écriture) : le TTL n'est
// qu'un filet de sécurité, pas une politique de fraîcheur.
type Cache struct {
	items map[string]Item
	mu    sync.RWMutex
}

// New crée un cache et démarre le nettoyage périodique des entrées expirées.
func New() *Cache {
	cache := &Cache{
		items: make(map[string]Item),
	}

	go func() {
		for {
			time.Sleep(time.Minute)
			cache.DeleteExpired()
		}
	}()

	return cache
}

// Set ajoute une entrée avec la durée de vie donnée.
func (c *Cache) Set(key string, value interface{}, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := time.Now().Add(duration).UnixNano()
	c.items[key] = Item{
		Value:      value,
		Expiration: expiration,
	}
}

// Get retourne l'entrée et un booléen indiquant si elle a été trouvée.
// Une entrée expirée compte comme absente.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}

	if time.Now().UnixNano() > item.Expiration {
		return nil, false
	}

	return item.Value, true
}

// Delete supprime une entrée.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeleteExpired supprime toutes les entrées expirées.
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.Expiration {
			delete(c.items, k)
		}
	}
}

// Clear vide entièrement le cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]Item)
}
