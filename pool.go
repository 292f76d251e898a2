package mui

// PoolSize is the number of slots in each pool: the container pool and the
// tree-node pool are the same size.
const PoolSize = 48

// ContainerPoolSize is the number of containers that can live at once.
const ContainerPoolSize = PoolSize

type poolItem struct {
	id         ID
	lastUpdate int
}

// Pool maps IDs to slot indices. Slots not touched recently are recycled
// oldest first.
type Pool struct {
	items [PoolSize]poolItem
}

// alloc claims the least recently touched slot for id and returns its index
// together with the ID that previously owned it (0 for a fresh slot). A
// slot that holds no ID always qualifies; otherwise only slots last touched
// before frame do.
func (p *Pool) alloc(id ID, frame int) (int, ID) {
	n, oldest := -1, frame
	for i := range p.items {
		if p.items[i].id == 0 {
			n = i
			break
		}
		if p.items[i].lastUpdate < oldest {
			oldest = p.items[i].lastUpdate
			n = i
		}
	}
	if n < 0 {
		violation("pool alloc", ErrPoolExhausted, "all %d slots touched in frame %d", len(p.items), frame)
	}
	evicted := p.items[n].id
	p.items[n].id = id
	p.update(n, frame)
	return n, evicted
}

// get returns the slot index holding id, or -1.
func (p *Pool) get(id ID) int {
	for i := range p.items {
		if p.items[i].id == id {
			return i
		}
	}
	return -1
}

// update marks a slot as touched in frame.
func (p *Pool) update(idx, frame int) {
	p.items[idx].lastUpdate = frame
}

// reset forgets a slot so it is the first candidate for reuse.
func (p *Pool) reset(idx int) {
	p.items[idx] = poolItem{}
}
