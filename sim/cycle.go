package sim

// Cycle advances every living process by one step. This is only a toy
// replicator so that the viewer has something moving to show: the IP walks
// the parent block while the SP copies it, one cell per cycle, into a child
// block right after it. A complete child is split off as a new process.
// Processes are reaped from the bottom of the queue while more than half of
// memory is allocated.
func (w *World) Cycle() {
	ids := append([]uint32(nil), w.queue...)
	for _, id := range ids {
		if w.alive[id] {
			w.step(id)
		}
	}
	w.cycles++

	for w.allocated > w.Size()/2 && len(w.queue) > 0 {
		_ = w.Kill()
	}
}

func (w *World) step(id uint32) {
	p := &w.procs[id]

	if next := p.IP + 1; next < p.MB1A+p.MB1S {
		p.IP = next
	} else {
		p.IP = p.MB1A
	}
	p.RAX++

	if p.MB2S == 0 {
		p.MB2A = p.MB1A + p.MB1S
	}
	if p.MB2S < p.MB1S {
		target := p.MB2A + p.MB2S
		if w.checkFree(target, 1) != nil {
			// blocked: drop the partial child and try again later
			w.unallocate(p.MB2A, p.MB2S)
			p.MB2S = 0
			p.SP = p.MB1A
			return
		}
		w.allocate(target, 1)
		_ = w.Write(target, w.Inst(p.MB1A+p.MB2S))
		p.MB2S++
		p.SP = target
		return
	}

	// split the finished child off; p is not used after Create
	addr, size := p.MB2A, p.MB2S
	w.unallocate(addr, size)
	p.MB2A, p.MB2S = 0, 0
	p.SP = p.MB1A
	p.RBX++
	_, _ = w.Create(addr, size)
}
