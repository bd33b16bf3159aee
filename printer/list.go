package printer

// Process table navigation. All of these only act on the process page.

// ListUp scrolls the process table back by n ids
func (p *Printer) ListUp(n uint32) {
	if p.Page != PageProcess {
		return
	}
	if p.ListScroll < n {
		p.ListScroll = 0
		return
	}
	p.ListScroll -= n
}

// ListDown scrolls the process table forward by n ids
func (p *Printer) ListDown(n uint32) {
	if p.Page != PageProcess {
		return
	}
	last := p.engine.Capacity()
	if last > 0 {
		last--
	}
	if p.ListScroll >= last || last-p.ListScroll < n {
		p.ListScroll = last
		return
	}
	p.ListScroll += n
}

// ListReset scrolls the process table back to id 0
func (p *Printer) ListReset() {
	if p.Page != PageProcess {
		return
	}
	p.ListScroll = 0
}

// ColumnReset scrolls the process table back to its first element, or to
// the first gene while genomes are shown
func (p *Printer) ColumnReset() {
	if p.Page != PageProcess {
		return
	}
	if p.GeneView {
		p.GeneScroll = 0
		return
	}
	p.ElemScroll = 0
}

// ListScrollTo makes id the first row of the process table, whatever page
// is shown
func (p *Printer) ListScrollTo(id uint32) {
	p.ListScroll = id
}

// ToggleGeneView switches the process table between data elements and
// genomes
func (p *Printer) ToggleGeneView() {
	if p.Page == PageProcess {
		p.GeneView = !p.GeneView
	}
}

// ListShow scrolls the process table so that id is its first row
func (p *Printer) ListShow(id uint32) {
	if p.Page != PageProcess || id >= p.engine.Capacity() {
		return
	}
	p.ListScroll = id
}

// ElemLeft shows the previous process element column, or the previous gene
func (p *Printer) ElemLeft() {
	if p.Page != PageProcess {
		return
	}
	if p.GeneView {
		if p.GeneScroll > 0 {
			p.GeneScroll--
		}
		return
	}
	p.ElemScroll = max(p.ElemScroll-1, 0)
}

// ElemRight shows the next process element column, or the next gene
func (p *Printer) ElemRight() {
	if p.Page != PageProcess {
		return
	}
	if p.GeneView {
		p.GeneScroll++
		return
	}
	p.ElemScroll = min(p.ElemScroll+1, len(p.engine.Elements())-1)
}
