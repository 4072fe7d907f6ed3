package memory

import (
	"sync"

	"github.com/jhoicas/btp-connect-api/internal/domain"
)

// tenantCollection es el equivalente en memoria de tenantTable: toda lectura o escritura
// pasa por el enterprise_id. Guarda copias para que el llamador no mute el estado interno.
type tenantCollection[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	order []string
	key   func(*T) (enterpriseID, id string)
}

func newTenantCollection[T any](key func(*T) (string, string)) *tenantCollection[T] {
	return &tenantCollection[T]{items: make(map[string]*T), key: key}
}

func (c *tenantCollection[T]) insert(v *T) error {
	_, id := c.key(v)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; ok {
		return domain.ErrDuplicate
	}
	cp := *v
	c.items[id] = &cp
	c.order = append(c.order, id)
	return nil
}

func (c *tenantCollection[T]) get(enterpriseID, id string) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	if !ok {
		return nil
	}
	if eid, _ := c.key(v); eid != enterpriseID {
		return nil
	}
	cp := *v
	return &cp
}

// list devuelve en orden de inserción los elementos de la empresa que cumplen keep (nil = todos).
func (c *tenantCollection[T]) list(enterpriseID string, keep func(*T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0)
	for _, id := range c.order {
		v := c.items[id]
		if eid, _ := c.key(v); eid != enterpriseID {
			continue
		}
		if keep != nil && !keep(v) {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out
}

func (c *tenantCollection[T]) count(enterpriseID string, keep func(*T) bool) int {
	return len(c.list(enterpriseID, keep))
}

// replace sustituye el elemento; domain.ErrNotFound si no existe en esa empresa.
func (c *tenantCollection[T]) replace(v *T) error {
	enterpriseID, id := c.key(v)
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, ok := c.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	if eid, _ := c.key(cur); eid != enterpriseID {
		return domain.ErrNotFound
	}
	cp := *v
	c.items[id] = &cp
	return nil
}

func (c *tenantCollection[T]) remove(enterpriseID, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, ok := c.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	if eid, _ := c.key(cur); eid != enterpriseID {
		return domain.ErrNotFound
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}
