package model

import "sync"

// cellSetPool recycles the scratch sets used to de-duplicate birth candidates
var cellSetPool = sync.Pool{
	New: func() interface{} {
		return make(map[Cell]struct{})
	},
}

// getCellSet retrieves an empty set from the pool
func getCellSet() map[Cell]struct{} {
	return cellSetPool.Get().(map[Cell]struct{})
}

// putCellSet returns a set to the pool, clearing its state
func putCellSet(s map[Cell]struct{}) {
	// Clear the set before returning to pool
	clear(s)
	cellSetPool.Put(s)
}
