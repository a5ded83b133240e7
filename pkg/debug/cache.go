package debug

// cache remembers the hashes of the most recently broadcast lines so
// that a CPU spinning in a loop does not flood connected clients.
type cache struct {
	hashes  []uint64
	idx     int
	enabled bool
}

func newCache(size int) *cache {
	if size < 1 {
		size = 1
	}
	return &cache{
		hashes:  make([]uint64, size),
		enabled: size > 1,
	}
}

func (c *cache) has(hash uint64) bool {
	if !c.enabled {
		return false
	}

	for _, h := range c.hashes {
		if h == hash {
			return true
		}
	}

	return false
}

func (c *cache) add(hash uint64) {
	c.hashes[c.idx] = hash
	c.idx = (c.idx + 1) % len(c.hashes)
}

// reset forgets every remembered hash.
func (c *cache) reset() {
	for i := range c.hashes {
		c.hashes[i] = 0
	}
	c.idx = 0
}
