package quote

import "container/list"

// resultCache 有界 LRU 缓存：键为 (省, 市, 重量)，满时淘汰最久未使用的条目
// 由聚合器实例持有，仅作性能优化，对计算结果无影响
type resultCache struct {
	capacity int
	order    *list.List // Front 为最近使用
	entries  map[string]*list.Element
}

type cacheEntry struct {
	key     string
	results []PriceResult
}

func newResultCache(capacity int) *resultCache {
	if capacity <= 0 {
		capacity = 64
	}
	return &resultCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

func (c *resultCache) get(key string) ([]PriceResult, bool) {
	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).results, true
}

func (c *resultCache) put(key string, results []PriceResult) {
	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry).results = results
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, results: results})
}

func (c *resultCache) len() int {
	return c.order.Len()
}
