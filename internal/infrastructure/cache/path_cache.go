// Package cache guarda vistas ya renderizadas indexadas por URI de la petición y
// permite invalidarlas por ruta.
package cache

import (
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// PathCache caché de vistas por ruta. Las claves son URIs ("/dashboard/invoices?page=2").
type PathCache struct {
	c *gocache.Cache

	// mu ordena Revalidate contra SetIfGeneration; gen sube en cada Revalidate.
	mu  sync.Mutex
	gen uint64
}

// NewPathCache crea la caché; ttl <= 0 significa que las entradas solo salen por Revalidate.
func NewPathCache(ttl time.Duration) *PathCache {
	if ttl <= 0 {
		return &PathCache{c: gocache.New(gocache.NoExpiration, 0)}
	}
	return &PathCache{c: gocache.New(ttl, 2*ttl)}
}

// Get devuelve la vista guardada para key.
func (p *PathCache) Get(key string) ([]byte, bool) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

// Set guarda la vista con el TTL por defecto.
func (p *PathCache) Set(key string, body []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.c.SetDefault(key, body)
}

// Generation número de invalidaciones hechas hasta ahora. Se toma antes de leer la
// base y se pasa a SetIfGeneration.
func (p *PathCache) Generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gen
}

// SetIfGeneration guarda la vista solo si no hubo Revalidate desde gen. Una vista
// leída antes de una mutación no debe sobrevivir a su invalidación.
func (p *PathCache) SetIfGeneration(key string, body []byte, gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != gen {
		return false
	}
	p.c.SetDefault(key, body)
	return true
}

// Revalidate descarta la vista de path y todas sus variantes con query string.
// La próxima lectura vuelve a consultar la base.
func (p *PathCache) Revalidate(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	prefix := path + "?"
	for key := range p.c.Items() {
		if key == path || strings.HasPrefix(key, prefix) {
			p.c.Delete(key)
		}
	}
}

// Len cantidad de vistas vigentes.
func (p *PathCache) Len() int {
	return p.c.ItemCount()
}
