// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

import "fmt"

// Stats returns a short textual summary of the manager's node table and
// garbage-collection history, in the teacher's stdio.go style.
func (m *Manager) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", m.varnum)
	res += fmt.Sprintf("Allocated:  %d\n", len(m.nodes))
	res += fmt.Sprintf("Produced:   %d\n", m.produced)
	free := float64(m.freenum) / float64(len(m.nodes)) * 100
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", m.freenum, free)
	res += fmt.Sprintf("Used:       %d  (%.3g %%)\n", len(m.nodes)-m.freenum, 100.0-free)
	res += fmt.Sprintf("# of GC:    %d\n", m.gcstats.collections)
	res += fmt.Sprintf("Unique:     %d access, %d hit, %d miss\n", m.cacheStats.uniqueAccess, m.cacheStats.uniqueHit, m.cacheStats.uniqueMiss)
	res += fmt.Sprintf("Op cache:   %d hit, %d miss", m.cacheStats.opHit, m.cacheStats.opMiss)
	return res
}

// PrintStats writes Stats to stdout, bracketed the way the teacher's
// PrintStats separates sections.
func (m *Manager) PrintStats() {
	fmt.Println("==============")
	fmt.Println(m.Stats())
	fmt.Println("==============")
}
